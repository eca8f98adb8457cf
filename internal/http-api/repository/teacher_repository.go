package repository

import (
	"schoolrate/internal/http-api/models"

	"gorm.io/gorm"
)

// TeacherOverviewRow is one teacher plus the aggregate over all their
// ratings. AverageOverall is nil when the teacher has no ratings yet,
// never a spurious zero.
type TeacherOverviewRow struct {
	ID             int64    `json:"id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Subject        string   `json:"subject"`
	AverageOverall *float64 `json:"average_overall"`
	RatingCount    int64    `json:"rating_count"`
}

// CriteriaAverages holds the per-criterion averages for one teacher.
// Zero-filled when no ratings exist.
type CriteriaAverages struct {
	Fairness    float64 `json:"fairness"`
	Competence  float64 `json:"competence"`
	Clarity     float64 `json:"clarity"`
	Helpfulness float64 `json:"helpfulness"`
	Patience    float64 `json:"patience"`
}

type TeacherRepository interface {
	Create(teacher *models.Teacher) error
	GetByID(id int64) (*models.Teacher, error)
	ListWithAverages() ([]TeacherOverviewRow, error)
	CriteriaAverages(teacherID int64) (*CriteriaAverages, error)
	DeleteWithRatings(id int64) error
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(teacher *models.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *teacherRepository) GetByID(id int64) (*models.Teacher, error) {
	var t models.Teacher
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListWithAverages returns one row per teacher with the average overall
// score across all ratings. The LEFT JOIN keeps zero-rating teachers in
// the result with a NULL average.
func (r *teacherRepository) ListWithAverages() ([]TeacherOverviewRow, error) {
	var rows []TeacherOverviewRow
	err := r.db.Model(&models.Teacher{}).
		Select("lehrer.id, lehrer.email, lehrer.first_name, lehrer.last_name, lehrer.subject, AVG(bewertung.overall) AS average_overall, COUNT(bewertung.id) AS rating_count").
		Joins("LEFT JOIN bewertung ON bewertung.teacher_id = lehrer.id").
		Group("lehrer.id").
		Order("lehrer.last_name, lehrer.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CriteriaAverages computes the per-criterion averages for a teacher.
// COALESCE keeps the historical zero-fill behavior for teachers without
// ratings, which differs from the overview's NULL policy on purpose.
func (r *teacherRepository) CriteriaAverages(teacherID int64) (*CriteriaAverages, error) {
	var avgs CriteriaAverages
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(fairness), 0) AS fairness, COALESCE(AVG(competence), 0) AS competence, COALESCE(AVG(clarity), 0) AS clarity, COALESCE(AVG(helpfulness), 0) AS helpfulness, COALESCE(AVG(patience), 0) AS patience").
		Where("teacher_id = ?", teacherID).
		Scan(&avgs).Error
	if err != nil {
		return nil, err
	}
	return &avgs, nil
}

// DeleteWithRatings removes a teacher and all ratings referencing it in a
// single transaction, ratings first, so a partial failure can never leave
// orphaned rows behind.
func (r *teacherRepository) DeleteWithRatings(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Teacher{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
