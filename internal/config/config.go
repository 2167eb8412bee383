package config

import (
	"os"
	"strings"
	"time"

	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/utils"
)

type Config struct {
	Port string

	// DatabaseURL selects Postgres when set; otherwise the server falls back
	// to a local SQLite file at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	OpenRouterTimeout time.Duration
}

func Load(log *logger.Logger) Config {
	timeoutSeconds := utils.GetEnvAsInt("OPENROUTER_TIMEOUT_SECONDS", 60, log)
	return Config{
		Port:              utils.GetEnv("PORT", "8080", log),
		DatabaseURL:       utils.GetEnv("DATABASE_URL", "", log),
		SQLitePath:        utils.GetEnv("SQLITE_PATH", "learnsphere.db", log),
		OpenRouterAPIKey:  loadOpenRouterKey(log),
		OpenRouterBaseURL: utils.GetEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1", log),
		OpenRouterModel:   utils.GetEnv("OPENROUTER_MODEL", "deepseek/deepseek-r1-0528", log),
		OpenRouterTimeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// loadOpenRouterKey resolves the provider credential from the environment
// first, then from a key file. An empty result means fallback mode: the
// server still runs and AI endpoints serve static content.
func loadOpenRouterKey(log *logger.Logger) string {
	if key := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")); key != "" {
		log.Info("Loaded OpenRouter API key from environment")
		return key
	}
	if path := utils.GetEnv("OPENROUTER_API_KEY_FILE", "", log); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Could not read OpenRouter key file", "path", path, "error", err)
			return ""
		}
		if key := strings.TrimSpace(string(raw)); key != "" {
			log.Info("Loaded OpenRouter API key from file", "path", path)
			return key
		}
	}
	log.Warn("No OpenRouter API key found, AI features will use fallback content")
	return ""
}
