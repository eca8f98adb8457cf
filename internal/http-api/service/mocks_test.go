package service

import (
	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// Repository mocks shared by the service tests.

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(student *models.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByUsername(username string) (*models.Student, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByID(id string) (*models.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(refreshToken *models.RefreshToken) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) Create(teacher *models.Teacher) error {
	args := m.Called(teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) GetByID(id int64) (*models.Teacher, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) ListWithAverages() ([]repository.TeacherOverviewRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TeacherOverviewRow), args.Error(1)
}

func (m *MockTeacherRepository) CriteriaAverages(teacherID int64) (*repository.CriteriaAverages, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CriteriaAverages), args.Error(1)
}

func (m *MockTeacherRepository) DeleteWithRatings(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) UpdateOwned(ratingID int64, studentID string, fields map[string]interface{}) error {
	args := m.Called(ratingID, studentID, fields)
	return args.Error(0)
}

func (m *MockRatingRepository) DeleteOwned(ratingID int64, studentID string) error {
	args := m.Called(ratingID, studentID)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByID(id int64) (*models.Rating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByStudentAndTeacher(studentID string, teacherID int64) (*models.Rating, error) {
	args := m.Called(studentID, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByTeacher(teacherID int64) ([]models.Rating, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByStudent(studentID string) ([]models.Rating, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) CountByStudentAndTeacher(studentID string, teacherID int64) (int64, error) {
	args := m.Called(studentID, teacherID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}
