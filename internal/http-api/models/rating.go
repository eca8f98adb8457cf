package models

import "time"

// Rating holds one student's scores for one teacher. The unique index on
// (student_id, teacher_id) makes the upsert race-free at the storage layer.
type Rating struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentID string `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_bewertung_student_teacher"`
	TeacherID int64  `json:"teacher_id" gorm:"not null;uniqueIndex:idx_bewertung_student_teacher;index"`

	Fairness    float64 `json:"fairness" gorm:"not null;check:fairness >= 1 AND fairness <= 5"`
	Competence  float64 `json:"competence" gorm:"not null;check:competence >= 1 AND competence <= 5"`
	Clarity     float64 `json:"clarity" gorm:"not null;check:clarity >= 1 AND clarity <= 5"`
	Helpfulness float64 `json:"helpfulness" gorm:"not null;check:helpfulness >= 1 AND helpfulness <= 5"`
	Patience    float64 `json:"patience" gorm:"not null;check:patience >= 1 AND patience <= 5"`

	// Overall is the mean of the five criteria, 2 decimals. Always recomputed
	// in the service, never accepted from the client.
	Overall float64 `json:"overall" gorm:"not null"`
	Comment string  `json:"comment"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;"`
	Teacher Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

func (Rating) TableName() string {
	return "bewertung"
}
