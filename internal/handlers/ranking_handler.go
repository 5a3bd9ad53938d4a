package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/service"
)

type RankingHandler struct {
	Service *service.RankingService
}

func NewRankingHandler(s *service.RankingService) *RankingHandler {
	return &RankingHandler{Service: s}
}

func (h *RankingHandler) ListRankedQuizzes(c *gin.Context) {
	ranked, err := h.Service.RankedQuizzes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

func (h *RankingHandler) GetQuizRankings(c *gin.Context) {
	board, err := h.Service.QuizRankings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
