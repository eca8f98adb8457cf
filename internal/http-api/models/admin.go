package models

// Admin marks a username as having elevated capability. The table is a plain
// membership set maintained outside the application; the app only reads it.
type Admin struct {
	Username string `json:"username" gorm:"primaryKey"`
}

func (Admin) TableName() string {
	return "admin"
}
