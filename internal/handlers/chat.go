package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		LessonContent string              `json:"lessonContent"`
		Messages      []services.ChatTurn `json:"messages"`
		Language      string              `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply := ch.chatService.Reply(c.Request.Context(), req.LessonContent, req.Messages, req.Language)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
