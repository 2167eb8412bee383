package main

import (
	"fmt"
	"os"

	"github.com/yungbote/learnsphere-backend/internal/config"
	"github.com/yungbote/learnsphere-backend/internal/db"
	"github.com/yungbote/learnsphere-backend/internal/handlers"
	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/repos"
	"github.com/yungbote/learnsphere-backend/internal/server"
	"github.com/yungbote/learnsphere-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg := config.Load(log)

	// Database
	dbService, err := db.NewService(cfg, log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(theDB, log)

	// Services
	log.Info("Setting up services...")
	var aiClient services.OpenRouterClient
	if client, err := services.NewOpenRouterClient(cfg, log); err != nil {
		log.Warn("OpenRouter client not initialized, AI endpoints will serve fallback content", "error", err)
	} else {
		aiClient = client
	}
	authService := services.NewAuthService(theDB, log, userRepo)
	userService := services.NewUserService(theDB, log, userRepo)
	lessonService := services.NewLessonService(log, aiClient)
	triviaService := services.NewTriviaService(log, aiClient)
	chatService := services.NewChatService(log, aiClient)

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	chatHandler := handlers.NewChatHandler(chatService)
	triviaHandler := handlers.NewTriviaHandler(triviaService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		Log:           log,
		AuthHandler:   authHandler,
		UserHandler:   userHandler,
		LessonHandler: lessonHandler,
		ChatHandler:   chatHandler,
		TriviaHandler: triviaHandler,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
