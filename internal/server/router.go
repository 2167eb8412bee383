package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnsphere-backend/internal/handlers"
	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/middleware"
)

type RouterConfig struct {
	Log           *logger.Logger
	AuthHandler   *handlers.AuthHandler
	UserHandler   *handlers.UserHandler
	LessonHandler *handlers.LessonHandler
	ChatHandler   *handlers.ChatHandler
	TriviaHandler *handlers.TriviaHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/", handlers.Root)

	api := router.Group("/api")
	{
		api.GET("/test", handlers.HealthCheck)

		// Accounts and progress
		api.POST("/auth/signup", cfg.AuthHandler.Signup)
		api.POST("/auth/signin", cfg.AuthHandler.Signin)
		api.POST("/user/dashboard", cfg.UserHandler.Dashboard)
		api.POST("/user/settings", cfg.UserHandler.UpdateSettings)
		api.POST("/user/xp", cfg.UserHandler.UpdateXP)
		api.POST("/bonus", cfg.UserHandler.Bonus)

		// AI-backed content
		api.POST("/lesson/assisted", cfg.LessonHandler.Assisted)
		api.POST("/lesson/self", cfg.LessonHandler.SelfStudy)
		api.POST("/chat", cfg.ChatHandler.Chat)
		api.POST("/trivia", cfg.TriviaHandler.Trivia)
		api.POST("/about", handlers.About)
	}

	return router
}
