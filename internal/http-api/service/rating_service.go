package service

import (
	"context"
	"errors"

	"schoolrate/internal/cache"
	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrForbidden      = errors.New("forbidden")
)

type RatingService interface {
	UpsertRating(studentID string, teacherID int64, scores CriteriaScores, comment string) (*models.Rating, error)
	UpdateRating(ratingID int64, studentID string, scores CriteriaScores, comment string) (*models.Rating, error)
	DeleteRating(ratingID int64, studentID string) error
	GetOwnRating(studentID string, teacherID int64) (*models.Rating, error)
	ListByTeacher(teacherID int64) ([]models.Rating, error)
	ListByStudent(studentID string) ([]models.Rating, error)
	CountByStudentAndTeacher(studentID string, teacherID int64) (int64, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	teacherRepo repository.TeacherRepository
	cache       *cache.Cache
}

func NewRatingService(ratingRepo repository.RatingRepository, teacherRepo repository.TeacherRepository, c *cache.Cache) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		teacherRepo: teacherRepo,
		cache:       c,
	}
}

// UpsertRating stores a student's rating for a teacher. A second submission
// for the same (student, teacher) pair replaces the first; the storage layer
// does the insert-or-update atomically.
func (s *ratingService) UpsertRating(studentID string, teacherID int64, scores CriteriaScores, comment string) (*models.Rating, error) {
	if !scores.Valid() {
		return nil, ErrInvalidInput
	}

	// Check if teacher exists
	if _, err := s.teacherRepo.GetByID(teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		StudentID:   studentID,
		TeacherID:   teacherID,
		Fairness:    scores.Fairness,
		Competence:  scores.Competence,
		Clarity:     scores.Clarity,
		Helpfulness: scores.Helpfulness,
		Patience:    scores.Patience,
		Overall:     scores.Overall(),
		Comment:     comment,
	}

	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, err
	}

	s.invalidateAggregates(teacherID)
	return rating, nil
}

// UpdateRating mutates an existing rating. Only the owning student may do so;
// a rating owned by someone else leaves storage untouched.
func (s *ratingService) UpdateRating(ratingID int64, studentID string, scores CriteriaScores, comment string) (*models.Rating, error) {
	if !scores.Valid() {
		return nil, ErrInvalidInput
	}

	existing, err := s.ratingRepo.GetByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	if existing.StudentID != studentID {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{
		"fairness":    scores.Fairness,
		"competence":  scores.Competence,
		"clarity":     scores.Clarity,
		"helpfulness": scores.Helpfulness,
		"patience":    scores.Patience,
		"overall":     scores.Overall(),
		"comment":     comment,
	}
	if err := s.ratingRepo.UpdateOwned(ratingID, studentID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	s.invalidateAggregates(existing.TeacherID)

	updated, err := s.ratingRepo.GetByID(ratingID)
	if err != nil {
		// a concurrent delete can land between the write and the re-read
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeleteRating removes a rating. The original system silently ignored
// deletes of foreign or unknown ids; this is the hardened variant that
// reports them instead.
func (s *ratingService) DeleteRating(ratingID int64, studentID string) error {
	existing, err := s.ratingRepo.GetByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	if existing.StudentID != studentID {
		return ErrForbidden
	}

	if err := s.ratingRepo.DeleteOwned(ratingID, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}

	s.invalidateAggregates(existing.TeacherID)
	return nil
}

// GetOwnRating retrieves the student's rating for a teacher, if any.
func (s *ratingService) GetOwnRating(studentID string, teacherID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByStudentAndTeacher(studentID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// ListByTeacher returns all ratings for a teacher with the authoring student
// preloaded, most recent first.
func (s *ratingService) ListByTeacher(teacherID int64) ([]models.Rating, error) {
	if _, err := s.teacherRepo.GetByID(teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return s.ratingRepo.ListByTeacher(teacherID)
}

// ListByStudent returns everything the student has rated, most recent first.
func (s *ratingService) ListByStudent(studentID string) ([]models.Rating, error) {
	return s.ratingRepo.ListByStudent(studentID)
}

// CountByStudentAndTeacher tells the caller whether to present an edit or a
// create form.
func (s *ratingService) CountByStudentAndTeacher(studentID string, teacherID int64) (int64, error) {
	return s.ratingRepo.CountByStudentAndTeacher(studentID, teacherID)
}

func (s *ratingService) invalidateAggregates(teacherID int64) {
	ctx := context.Background()
	s.cache.Invalidate(ctx, overviewCacheKey, criteriaCacheKey(teacherID))
}
