package handler

import (
	"errors"
	"net/http"
	"strconv"

	"schoolrate/internal/http-api/dto"
	"schoolrate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes. The parent group is
// already authenticated.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/teachers/:teacher_id/ratings")
	{
		ratings.GET("", h.ListByTeacher)      // All ratings for a teacher
		ratings.POST("", h.Upsert)            // Submit or replace own rating
		ratings.GET("/me", h.GetOwn)          // Current student's rating
		ratings.GET("/me/count", h.CountOwn)  // Edit-vs-create form decision
	}

	router.PUT("/ratings/:rating_id", h.Update)
	router.DELETE("/ratings/:rating_id", h.Delete)
	router.GET("/me/ratings", h.ListOwn)
}

func scoresFromRequest(req *dto.SubmitRatingRequest) service.CriteriaScores {
	return service.CriteriaScores{
		Fairness:    req.Fairness,
		Competence:  req.Competence,
		Clarity:     req.Clarity,
		Helpfulness: req.Helpfulness,
		Patience:    req.Patience,
	}
}

// Upsert creates the student's rating for a teacher or replaces it in place.
// POST /api/teachers/:teacher_id/ratings
func (h *RatingHandler) Upsert(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	// Get student ID from context (set by AuthMiddleware)
	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.UpsertRating(studentID.(string), teacherID, scoresFromRequest(&req), req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Scores must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Update edits an existing rating by id. Only the owner may do this.
// PUT /api/ratings/:rating_id
func (h *RatingHandler) Update(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.UpdateRating(ratingID, studentID.(string), scoresFromRequest(&req), req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your rating"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Scores must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Delete removes the student's own rating.
// DELETE /api/ratings/:rating_id
func (h *RatingHandler) Delete(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	if err := h.ratingService.DeleteRating(ratingID, studentID.(string)); err != nil {
		switch {
		case errors.Is(err, service.ErrRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your rating"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// ListByTeacher retrieves all ratings for a teacher, most recent first.
// GET /api/teachers/:teacher_id/ratings
func (h *RatingHandler) ListByTeacher(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	ratings, err := h.ratingService.ListByTeacher(teacherID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ratings": responses})
}

// GetOwn retrieves the current student's rating for a teacher.
// GET /api/teachers/:teacher_id/ratings/me
func (h *RatingHandler) GetOwn(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	rating, err := h.ratingService.GetOwnRating(studentID.(string), teacherID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// CountOwn reports how many ratings the student has for this teacher (0 or
// 1); the frontend uses it to pick the edit or the create form.
// GET /api/teachers/:teacher_id/ratings/me/count
func (h *RatingHandler) CountOwn(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	count, err := h.ratingService.CountByStudentAndTeacher(studentID.(string), teacherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListOwn retrieves everything the current student has rated.
// GET /api/me/ratings
func (h *RatingHandler) ListOwn(c *gin.Context) {
	studentID, exists := c.Get("studentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
		return
	}

	ratings, err := h.ratingService.ListByStudent(studentID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	responses := make([]dto.StudentRatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToStudentRatingResponse(&ratings[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ratings": responses})
}
