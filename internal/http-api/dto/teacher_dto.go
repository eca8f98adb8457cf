package dto

// CreateTeacherRequest: payload for adding a teacher record (admin only)
type CreateTeacherRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Subject   string `json:"subject" binding:"required,max=100"`
}
