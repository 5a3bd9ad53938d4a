package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/auth"
	"quizapp-service/internal/models"
	"quizapp-service/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.Service.ListSummaries(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetQuiz serves the take-view. Private quizzes read the password from the
// query string; a wrong one gets 403 and the caller may simply retry.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	view, err := h.Service.TakeView(c.Request.Context(), c.Param("id"), auth.UserID(c), c.Query("password"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateQuiz(c.Request.Context(), auth.UserID(c), &quiz); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": quiz.ID.Hex()})
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.DeleteQuiz(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
