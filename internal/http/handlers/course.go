package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnify-backend/internal/http/middleware"
	"github.com/yungbote/learnify-backend/internal/http/response"
	"github.com/yungbote/learnify-backend/internal/services"
)

type CourseHandler struct {
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// POST /courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req services.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courseService.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, course)
}

// GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListPublished(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, courses)
}

// GET /courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	course, err := h.courseService.Get(c.Request.Context(), courseID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, course)
}

// PUT /courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	var req services.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courseService.Update(c.Request.Context(), middleware.Actor(c), courseID, req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, course)
}

// PUT /courses/:id/publish
func (h *CourseHandler) PublishCourse(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	var req struct {
		IsPublished *bool `json:"is_published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courseService.SetPublished(c.Request.Context(), middleware.Actor(c), courseID, *req.IsPublished)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, course)
}

// DELETE /courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if err := h.courseService.Delete(c.Request.Context(), middleware.Actor(c), courseID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Course deleted"})
}

// GET /courses/:id/lessons
func (h *CourseHandler) ListLessons(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	lessons, err := h.courseService.ListLessons(c.Request.Context(), courseID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, lessons)
}
