package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/services"
)

type TriviaHandler struct {
	triviaService services.TriviaService
}

func NewTriviaHandler(triviaService services.TriviaService) *TriviaHandler {
	return &TriviaHandler{triviaService: triviaService}
}

func (th *TriviaHandler) Trivia(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	quiz := th.triviaService.Generate(c.Request.Context(), req.Language)
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}
