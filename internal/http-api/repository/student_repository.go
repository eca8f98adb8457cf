package repository

import (
	"schoolrate/internal/http-api/models"

	"gorm.io/gorm"
)

// StudentRepository defines the interface for student data operations.
type StudentRepository interface {
	Create(student *models.Student) error
	FindByUsername(username string) (*models.Student, error)
	FindByID(id string) (*models.Student, error)
}

// studentRepository is the GORM implementation of StudentRepository.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new instance of StudentRepository in a GORM implementation
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByUsername(username string) (*models.Student, error) {
	var student models.Student
	// return nil on error so callers never see a zero-value struct
	if err := r.db.Where("username = ?", username).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByID(id string) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}
