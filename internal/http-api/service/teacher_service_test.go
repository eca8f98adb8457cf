package service

import (
	"testing"

	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

func TestOverview_RoundsToOneDecimal(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("ListWithAverages").Return([]repository.TeacherOverviewRow{
		{ID: 1, LastName: "Meier", AverageOverall: floatPtr(4.1666666), RatingCount: 3},
	}, nil)

	rows, err := svc.Overview()

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.InDelta(t, 4.2, *rows[0].AverageOverall, 1e-9)
}

func TestOverview_ZeroRatingsStaysNil(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("ListWithAverages").Return([]repository.TeacherOverviewRow{
		{ID: 1, LastName: "Meier", AverageOverall: nil, RatingCount: 0},
	}, nil)

	rows, err := svc.Overview()

	assert.NoError(t, err)
	// absent average, never a spurious 0
	assert.Nil(t, rows[0].AverageOverall)
}

func TestCriteriaBreakdown_RoundsToTwoDecimals(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("GetByID", int64(1)).Return(&models.Teacher{ID: 1}, nil)
	teacherRepo.On("CriteriaAverages", int64(1)).Return(&repository.CriteriaAverages{
		Fairness:    4.333333,
		Competence:  3.666666,
		Clarity:     2.5,
		Helpfulness: 5,
		Patience:    1.005,
	}, nil)

	avgs, err := svc.CriteriaBreakdown(1)

	assert.NoError(t, err)
	assert.InDelta(t, 4.33, avgs.Fairness, 1e-9)
	assert.InDelta(t, 3.67, avgs.Competence, 1e-9)
	assert.InDelta(t, 2.5, avgs.Clarity, 1e-9)
	assert.InDelta(t, 5, avgs.Helpfulness, 1e-9)
}

func TestCriteriaBreakdown_ZeroRatingsZeroFilled(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("GetByID", int64(1)).Return(&models.Teacher{ID: 1}, nil)
	teacherRepo.On("CriteriaAverages", int64(1)).Return(&repository.CriteriaAverages{}, nil)

	avgs, err := svc.CriteriaBreakdown(1)

	assert.NoError(t, err)
	assert.Equal(t, repository.CriteriaAverages{}, *avgs)
}

func TestCriteriaBreakdown_TeacherMissing(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("GetByID", int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CriteriaBreakdown(42)

	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestCreateTeacher_RejectsEmptyFields(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	_, err := svc.CreateTeacher("", "Max", "Meier", "Mathe")

	assert.ErrorIs(t, err, ErrInvalidInput)
	teacherRepo.AssertNotCalled(t, "Create")
}

func TestDeleteTeacher_CascadesViaRepository(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("DeleteWithRatings", int64(1)).Return(nil)

	assert.NoError(t, svc.DeleteTeacher(1))
	teacherRepo.AssertExpectations(t)
}

func TestDeleteTeacher_Missing(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	teacherRepo.On("DeleteWithRatings", int64(42)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteTeacher(42), ErrTeacherNotFound)
}

func TestIsAdmin(t *testing.T) {
	teacherRepo := new(MockTeacherRepository)
	adminRepo := new(MockAdminRepository)
	svc := NewTeacherService(teacherRepo, adminRepo, nil)

	adminRepo.On("IsAdmin", "rektor").Return(true, nil)
	adminRepo.On("IsAdmin", "max").Return(false, nil)

	isAdmin, err := svc.IsAdmin("rektor")
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("max")
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}
