package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnify-backend/internal/http/middleware"
	"github.com/yungbote/learnify-backend/internal/http/response"
	"github.com/yungbote/learnify-backend/internal/services"
)

type QuizHandler struct {
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GET /quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := parseID(c.Param("id"), "quiz id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	view, err := h.quizService.GetQuiz(c.Request.Context(), quizID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// POST /quizzes/:id/attempt
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	quizID, err := parseID(c.Param("id"), "quiz id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	var req struct {
		Answers []string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.quizService.SubmitAttempt(c.Request.Context(), middleware.Actor(c), quizID, req.Answers)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /quizzes/course/:course_id
func (h *QuizHandler) GetQuizByCourse(c *gin.Context) {
	courseID, err := parseID(c.Param("course_id"), "course id")
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	ref, err := h.quizService.GetQuizByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, ref)
}

// GET /quizzes/history/me
func (h *QuizHandler) GetHistory(c *gin.Context) {
	history, err := h.quizService.GetHistory(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, history)
}
