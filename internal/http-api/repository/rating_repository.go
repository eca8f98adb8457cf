package repository

import (
	"schoolrate/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	UpdateOwned(ratingID int64, studentID string, fields map[string]interface{}) error
	DeleteOwned(ratingID int64, studentID string) error
	GetByID(id int64) (*models.Rating, error)
	GetByStudentAndTeacher(studentID string, teacherID int64) (*models.Rating, error)
	ListByTeacher(teacherID int64) ([]models.Rating, error)
	ListByStudent(studentID string) ([]models.Rating, error)
	CountByStudentAndTeacher(studentID string, teacherID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (student, teacher) pair already
// exists, updates the existing row in place. A single ON CONFLICT statement
// so concurrent submissions of the same pair cannot race past the unique
// index.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "teacher_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fairness", "competence", "clarity", "helpfulness", "patience",
			"overall", "comment", "updated_at",
		}),
	}).Create(rating).Error
}

// UpdateOwned applies fields to the rating only if it is owned by studentID.
// The ownership check lives in the WHERE clause, so a non-owner update never
// touches storage.
func (r *ratingRepository) UpdateOwned(ratingID int64, studentID string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Rating{}).
		Where("id = ? AND student_id = ?", ratingID, studentID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned deletes the rating only if it is owned by studentID.
func (r *ratingRepository) DeleteOwned(ratingID int64, studentID string) error {
	result := r.db.Where("id = ? AND student_id = ?", ratingID, studentID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByStudentAndTeacher retrieves a student's rating for a specific teacher
func (r *ratingRepository) GetByStudentAndTeacher(studentID string, teacherID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("student_id = ? AND teacher_id = ?", studentID, teacherID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByTeacher retrieves all ratings for a teacher joined with the authoring
// student, most recently written first. Ordering follows updated_at, which
// the upsert refreshes, so an edited rating resurfaces at the top.
func (r *ratingRepository) ListByTeacher(teacherID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("teacher_id = ?", teacherID).
		Preload("Student").
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListByStudent retrieves all ratings a student has submitted joined with the
// rated teacher, most recently written first.
func (r *ratingRepository) ListByStudent(studentID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("student_id = ?", studentID).
		Preload("Teacher").
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountByStudentAndTeacher reports how many ratings the student has for the
// teacher. Callers use it to decide between an edit and a create form; with
// the unique pair index the answer is 0 or 1.
func (r *ratingRepository) CountByStudentAndTeacher(studentID string, teacherID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).
		Where("student_id = ? AND teacher_id = ?", studentID, teacherID).
		Count(&count).Error
	return count, err
}
