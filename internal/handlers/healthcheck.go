package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "pong",
		"status":      "healthy",
		"ai_provider": "OpenRouter",
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LearnSphere Backend API",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": []string{
			"/api/test - Health check",
			"/api/auth/signup - User registration",
			"/api/auth/signin - User login",
			"/api/lesson/assisted - AI-assisted lessons",
			"/api/lesson/self - Self-study lessons",
			"/api/chat - AI chat tutor",
			"/api/trivia - Fun trivia",
		},
	})
}
