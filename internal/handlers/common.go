package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/models"
)

// respondError maps domain errors to HTTP statuses. Store failures fall
// through to 500 and are surfaced, never retried.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrQuizNotFound), errors.Is(err, models.ErrAnswerNotFound), errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrIncorrectPassword):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "INCORRECT_PASSWORD"})
	case errors.Is(err, models.ErrAccessDenied), errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "ALREADY_ANSWERED"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
