package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := ah.authService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "message": "Success"})
}

func (ah *AuthHandler) Signin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := ah.authService.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "message": "Success"})
}
