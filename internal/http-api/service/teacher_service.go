package service

import (
	"context"
	"errors"
	"fmt"

	"schoolrate/internal/cache"
	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrTeacherNotFound = errors.New("teacher not found")

const overviewCacheKey = "lehrer:overview"

func criteriaCacheKey(teacherID int64) string {
	return fmt.Sprintf("lehrer:%d:criteria", teacherID)
}

type TeacherService interface {
	Overview() ([]repository.TeacherOverviewRow, error)
	CriteriaBreakdown(teacherID int64) (*repository.CriteriaAverages, error)
	GetTeacher(teacherID int64) (*models.Teacher, error)
	CreateTeacher(email, firstName, lastName, subject string) (*models.Teacher, error)
	DeleteTeacher(teacherID int64) error
	IsAdmin(username string) (bool, error)
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
	adminRepo   repository.AdminRepository
	cache       *cache.Cache
}

func NewTeacherService(teacherRepo repository.TeacherRepository, adminRepo repository.AdminRepository, c *cache.Cache) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		cache:       c,
	}
}

// Overview returns one row per teacher with the average overall score
// rounded to 1 decimal. Teachers without ratings keep a nil average; the
// overview never reports a fake 0. Served from cache when possible.
func (s *teacherService) Overview() ([]repository.TeacherOverviewRow, error) {
	ctx := context.Background()

	var cached []repository.TeacherOverviewRow
	if s.cache.Get(ctx, overviewCacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.teacherRepo.ListWithAverages()
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].AverageOverall != nil {
			rounded := round1(*rows[i].AverageOverall)
			rows[i].AverageOverall = &rounded
		}
	}

	s.cache.Set(ctx, overviewCacheKey, rows)
	return rows, nil
}

// CriteriaBreakdown returns the five per-criterion averages for a teacher,
// rounded to 2 decimals. A teacher without ratings gets all zeros; that
// zero-fill differs from the overview's nil policy and is kept for
// compatibility with the original behavior.
func (s *teacherService) CriteriaBreakdown(teacherID int64) (*repository.CriteriaAverages, error) {
	ctx := context.Background()

	var cached repository.CriteriaAverages
	if s.cache.Get(ctx, criteriaCacheKey(teacherID), &cached) {
		return &cached, nil
	}

	if _, err := s.teacherRepo.GetByID(teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	avgs, err := s.teacherRepo.CriteriaAverages(teacherID)
	if err != nil {
		return nil, err
	}

	avgs.Fairness = round2(avgs.Fairness)
	avgs.Competence = round2(avgs.Competence)
	avgs.Clarity = round2(avgs.Clarity)
	avgs.Helpfulness = round2(avgs.Helpfulness)
	avgs.Patience = round2(avgs.Patience)

	s.cache.Set(ctx, criteriaCacheKey(teacherID), avgs)
	return avgs, nil
}

func (s *teacherService) GetTeacher(teacherID int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return teacher, nil
}

// CreateTeacher adds a teacher record. Admin capability is checked at the
// route boundary; the service validates the payload.
func (s *teacherService) CreateTeacher(email, firstName, lastName, subject string) (*models.Teacher, error) {
	if email == "" || firstName == "" || lastName == "" || subject == "" {
		return nil, ErrInvalidInput
	}

	teacher := &models.Teacher{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Subject:   subject,
	}
	if err := s.teacherRepo.Create(teacher); err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background(), overviewCacheKey)
	return teacher, nil
}

// DeleteTeacher removes a teacher and cascades over its ratings in one
// transaction.
func (s *teacherService) DeleteTeacher(teacherID int64) error {
	if err := s.teacherRepo.DeleteWithRatings(teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	s.cache.Invalidate(context.Background(), overviewCacheKey, criteriaCacheKey(teacherID))
	return nil
}

// IsAdmin is a plain membership lookup against the admin table.
func (s *teacherService) IsAdmin(username string) (bool, error) {
	return s.adminRepo.IsAdmin(username)
}
