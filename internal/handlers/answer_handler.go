package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/auth"
	"quizapp-service/internal/models"
	"quizapp-service/internal/service"
)

type AnswerHandler struct {
	Service *service.AnswerService
}

func NewAnswerHandler(s *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{Service: s}
}

// SubmitAnswers scores and stores the caller's one-time response. A repeat
// submission gets 409 and leaves the stored record untouched.
func (h *AnswerHandler) SubmitAnswers(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.Submit(c.Request.Context(), auth.UserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetMyAnswer returns the stored response for read-only display, with the
// per-question selections reconstructed from the saved entries.
func (h *AnswerHandler) GetMyAnswer(c *gin.Context) {
	answer, selections, err := h.Service.StoredAnswer(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quizId":      answer.QuizID,
		"score":       answer.Score,
		"submittedAt": answer.SubmittedAt,
		"answers":     selections,
	})
}

func (h *AnswerHandler) ListMyAnswers(c *gin.Context) {
	answers, err := h.Service.ListForUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}
