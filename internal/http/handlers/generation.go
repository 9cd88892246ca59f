package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnify-backend/internal/http/middleware"
	"github.com/yungbote/learnify-backend/internal/http/response"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
	"github.com/yungbote/learnify-backend/internal/services"
	"github.com/yungbote/learnify-backend/internal/sse"
)

type GenerationHandler struct {
	log               *logger.Logger
	generationService services.GenerationService
}

func NewGenerationHandler(log *logger.Logger, generationService services.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		log:               log.With("handler", "GenerationHandler"),
		generationService: generationService,
	}
}

type generateCourseRequest struct {
	CourseID   uint `json:"course_id" binding:"required"`
	NumLessons *int `json:"num_lessons"`
}

type generateQuizRequest struct {
	CourseID     uint `json:"course_id" binding:"required"`
	NumQuestions *int `json:"num_questions"`
}

type lessonEvent struct {
	Lesson services.GeneratedLesson `json:"lesson"`
	Index  int                      `json:"index"`
}

type doneEvent struct {
	Done bool `json:"done"`
}

// POST /ai/generate-course
func (h *GenerationHandler) GenerateCourse(c *gin.Context) {
	var req generateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.generationService.GenerateCourseContent(
		c.Request.Context(),
		middleware.Actor(c),
		req.CourseID,
		intOr(req.NumLessons, services.DefaultNumLessons),
	)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /ai/generate-course-stream
//
// Errors before the first byte are ordinary JSON responses. Once the event
// stream is open, a failure just ends the stream without the done event.
func (h *GenerationHandler) GenerateCourseStream(c *gin.Context) {
	var req generateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ctx := c.Request.Context()
	stream, err := h.generationService.StartCourseStream(
		ctx,
		middleware.Actor(c),
		req.CourseID,
		intOr(req.NumLessons, services.DefaultNumLessons),
	)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}

	sw, err := sse.NewWriter(c.Writer)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "streaming_unsupported", err)
		return
	}

	err = stream.Run(ctx, func(index int, lesson services.GeneratedLesson) error {
		return sw.Send(lessonEvent{Lesson: lesson, Index: index})
	})
	if err != nil {
		h.log.Warn("Course stream ended early", "course_id", req.CourseID, "error", err)
		return
	}
	if err := sw.Send(doneEvent{Done: true}); err != nil {
		h.log.Warn("Course stream done event failed", "course_id", req.CourseID, "error", err)
	}
}

// POST /ai/generate-quiz
func (h *GenerationHandler) GenerateQuiz(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.generationService.GenerateQuiz(
		c.Request.Context(),
		middleware.Actor(c),
		req.CourseID,
		intOr(req.NumQuestions, services.DefaultNumQuestions),
	)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}
