package handler

import (
	"errors"
	"net/http"
	"strconv"

	"schoolrate/internal/http-api/dto"
	"schoolrate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	teacherService service.TeacherService
}

func NewTeacherHandler(teacherService service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// RegisterRoutes registers teacher-related routes. requireAdmin guards the
// mutating ones.
func (h *TeacherHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	teachers := router.Group("/teachers")
	{
		teachers.GET("", h.Overview)                         // All teachers with average overall score
		teachers.GET("/:teacher_id", h.Get)                  // One teacher record
		teachers.GET("/:teacher_id/criteria", h.GetCriteria) // Per-criterion averages

		teachers.POST("", requireAdmin, h.Create)
		teachers.DELETE("/:teacher_id", requireAdmin, h.Delete)
	}
}

// Overview lists every teacher with the average overall score.
// GET /api/teachers
func (h *TeacherHandler) Overview(c *gin.Context) {
	rows, err := h.teacherService.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teachers": rows})
}

// Get retrieves a single teacher record.
// GET /api/teachers/:teacher_id
func (h *TeacherHandler) Get(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	teacher, err := h.teacherService.GetTeacher(teacherID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, teacher)
}

// GetCriteria returns the five per-criterion averages for a teacher.
// GET /api/teachers/:teacher_id/criteria
func (h *TeacherHandler) GetCriteria(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	avgs, err := h.teacherService.CriteriaBreakdown(teacherID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, avgs)
}

// Create adds a teacher record (admin only).
// POST /api/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher, err := h.teacherService.CreateTeacher(req.Email, req.FirstName, req.LastName, req.Subject)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, teacher)
}

// Delete removes a teacher and all its ratings (admin only).
// DELETE /api/teachers/:teacher_id
func (h *TeacherHandler) Delete(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid teacher ID"})
		return
	}

	if err := h.teacherService.DeleteTeacher(teacherID); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}
