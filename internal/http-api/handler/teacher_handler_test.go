package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schoolrate/internal/http-api/models"
	"schoolrate/internal/http-api/repository"
	"schoolrate/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTeacherService mocks the TeacherService interface
type MockTeacherService struct {
	mock.Mock
}

func (m *MockTeacherService) Overview() ([]repository.TeacherOverviewRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TeacherOverviewRow), args.Error(1)
}

func (m *MockTeacherService) CriteriaBreakdown(teacherID int64) (*repository.CriteriaAverages, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CriteriaAverages), args.Error(1)
}

func (m *MockTeacherService) GetTeacher(teacherID int64) (*models.Teacher, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeacherService) CreateTeacher(email, firstName, lastName, subject string) (*models.Teacher, error) {
	args := m.Called(email, firstName, lastName, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockTeacherService) DeleteTeacher(teacherID int64) error {
	args := m.Called(teacherID)
	return args.Error(0)
}

func (m *MockTeacherService) IsAdmin(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func TestOverview_NullAverageForUnratedTeacher(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.GET("/teachers", h.Overview)

	avg := 4.2
	mockService.On("Overview").Return([]repository.TeacherOverviewRow{
		{ID: 1, FirstName: "Anna", LastName: "Meier", Subject: "Mathe", AverageOverall: &avg, RatingCount: 3},
		{ID: 2, FirstName: "Bernd", LastName: "Schulz", Subject: "Deutsch", AverageOverall: nil, RatingCount: 0},
	}, nil)

	req, _ := http.NewRequest("GET", "/teachers", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Teachers []map[string]interface{} `json:"teachers"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Teachers, 2)
	assert.Equal(t, 4.2, response.Teachers[0]["average_overall"])
	// unrated teacher renders JSON null, not 0
	assert.Nil(t, response.Teachers[1]["average_overall"])
}

func TestGetCriteria_ZeroFilled(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.GET("/teachers/:teacher_id/criteria", h.GetCriteria)

	mockService.On("CriteriaBreakdown", int64(2)).Return(&repository.CriteriaAverages{}, nil)

	req, _ := http.NewRequest("GET", "/teachers/2/criteria", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response repository.CriteriaAverages
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, repository.CriteriaAverages{}, response)
}

func TestCreateTeacher_Success(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.POST("/teachers", h.Create)

	teacher := &models.Teacher{ID: 1, Email: "meier@schule.de", FirstName: "Anna", LastName: "Meier", Subject: "Mathe"}
	mockService.On("CreateTeacher", "meier@schule.de", "Anna", "Meier", "Mathe").Return(teacher, nil)

	body, _ := json.Marshal(map[string]string{
		"email":      "meier@schule.de",
		"first_name": "Anna",
		"last_name":  "Meier",
		"subject":    "Mathe",
	})

	req, _ := http.NewRequest("POST", "/teachers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateTeacher_MissingSubject(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.POST("/teachers", h.Create)

	body, _ := json.Marshal(map[string]string{
		"email":      "meier@schule.de",
		"first_name": "Anna",
		"last_name":  "Meier",
	})

	req, _ := http.NewRequest("POST", "/teachers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateTeacher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTeacher_Missing(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.DELETE("/teachers/:teacher_id", h.Delete)

	mockService.On("DeleteTeacher", int64(42)).Return(service.ErrTeacherNotFound)

	req, _ := http.NewRequest("DELETE", "/teachers/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTeacher_Success(t *testing.T) {
	mockService := new(MockTeacherService)
	h := NewTeacherHandler(mockService)
	router := setupRouter()
	router.DELETE("/teachers/:teacher_id", h.Delete)

	mockService.On("DeleteTeacher", int64(1)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/teachers/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
