package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) Dashboard(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := uh.userService.GetDashboard(c.Request.Context(), req.Username)
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

func (uh *UserHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Username    string `json:"username"`
		Avatar      string `json:"avatar"`
		School      string `json:"school"`
		Description string `json:"description"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := uh.userService.UpdateSettings(c.Request.Context(), req.Username, services.SettingsUpdate{
		Avatar:      req.Avatar,
		School:      req.School,
		Description: req.Description,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "message": "Updated"})
}

func (uh *UserHandler) UpdateXP(c *gin.Context) {
	// The frontend also sends its current level; the stored record is
	// authoritative, so the field is accepted and ignored.
	var req struct {
		Username string `json:"username"`
		Topic    string `json:"topic"`
		Score    int    `json:"score"`
		Level    int    `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := uh.userService.ApplyXP(c.Request.Context(), req.Username, req.Topic, req.Score)
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "XP Updated",
		"new_xp":    user.TotalXP,
		"new_level": user.Level,
		"rank":      user.Rank,
	})
}

func (uh *UserHandler) Bonus(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Score    int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := uh.userService.ApplyBonus(c.Request.Context(), req.Username, req.Score)
	if err != nil {
		RespondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Bonus Applied",
		"new_xp":  user.TotalXP,
	})
}
