package dto

import (
	"time"

	"schoolrate/internal/http-api/models"
)

// SubmitRatingRequest for creating, replacing or editing a rating. The five
// criterion scores share the same [1,5] range; the overall score is derived
// server-side and never part of the payload.
type SubmitRatingRequest struct {
	Fairness    float64 `json:"fairness" binding:"required,min=1,max=5"`
	Competence  float64 `json:"competence" binding:"required,min=1,max=5"`
	Clarity     float64 `json:"clarity" binding:"required,min=1,max=5"`
	Helpfulness float64 `json:"helpfulness" binding:"required,min=1,max=5"`
	Patience    float64 `json:"patience" binding:"required,min=1,max=5"`
	Comment     string  `json:"comment" binding:"max=2000"`
}

// RatingResponse for returning one rating on a teacher page, joined with the
// authoring student's username.
type RatingResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Fairness    float64   `json:"fairness"`
	Competence  float64   `json:"competence"`
	Clarity     float64   `json:"clarity"`
	Helpfulness float64   `json:"helpfulness"`
	Patience    float64   `json:"patience"`
	Overall     float64   `json:"overall"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:          rating.ID,
		Username:    rating.Student.Username,
		Fairness:    rating.Fairness,
		Competence:  rating.Competence,
		Clarity:     rating.Clarity,
		Helpfulness: rating.Helpfulness,
		Patience:    rating.Patience,
		Overall:     rating.Overall,
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt,
		UpdatedAt:   rating.UpdatedAt,
	}
}

// TeacherSummary is the short teacher header shown next to a student's own
// rating.
type TeacherSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Subject   string `json:"subject"`
}

// StudentRatingResponse for a student's own ratings list.
type StudentRatingResponse struct {
	ID          int64          `json:"id"`
	Teacher     TeacherSummary `json:"teacher"`
	Fairness    float64        `json:"fairness"`
	Competence  float64        `json:"competence"`
	Clarity     float64        `json:"clarity"`
	Helpfulness float64        `json:"helpfulness"`
	Patience    float64        `json:"patience"`
	Overall     float64        `json:"overall"`
	Comment     string         `json:"comment,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FromModelToStudentRatingResponse converts a Rating with a preloaded Teacher
// to the student's own view of it.
func FromModelToStudentRatingResponse(rating *models.Rating) *StudentRatingResponse {
	return &StudentRatingResponse{
		ID: rating.ID,
		Teacher: TeacherSummary{
			ID:        rating.Teacher.ID,
			FirstName: rating.Teacher.FirstName,
			LastName:  rating.Teacher.LastName,
			Subject:   rating.Teacher.Subject,
		},
		Fairness:    rating.Fairness,
		Competence:  rating.Competence,
		Clarity:     rating.Clarity,
		Helpfulness: rating.Helpfulness,
		Patience:    rating.Patience,
		Overall:     rating.Overall,
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt,
		UpdatedAt:   rating.UpdatedAt,
	}
}
