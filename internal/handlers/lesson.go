package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/services"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

type lessonRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
	Rank     string `json:"rank"`
	Level    int    `json:"level"`
}

func (lh *LessonHandler) Assisted(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lesson, err := lh.lessonService.GenerateAssisted(c.Request.Context(), req.Topic, req.Language, req.Rank, req.Level)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (lh *LessonHandler) SelfStudy(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lesson := lh.lessonService.GenerateSelfStudy(c.Request.Context(), req.Topic, req.Language, req.Rank, req.Level)
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}
