package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yungbote/learnsphere-backend/internal/testutil"
)

// unset clears env vars for the test; t.Setenv registers the restore.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unset(t,
		"PORT",
		"DATABASE_URL",
		"SQLITE_PATH",
		"OPENROUTER_API_KEY",
		"OPENROUTER_API_KEY_FILE",
		"OPENROUTER_BASE_URL",
		"OPENROUTER_MODEL",
		"OPENROUTER_TIMEOUT_SECONDS",
	)

	cfg := Load(testutil.Logger(t))
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.SQLitePath != "learnsphere.db" {
		t.Fatalf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("OpenRouterBaseURL = %q", cfg.OpenRouterBaseURL)
	}
	if cfg.OpenRouterModel != "deepseek/deepseek-r1-0528" {
		t.Fatalf("OpenRouterModel = %q", cfg.OpenRouterModel)
	}
	if cfg.OpenRouterTimeout != 60*time.Second {
		t.Fatalf("OpenRouterTimeout = %v", cfg.OpenRouterTimeout)
	}
	if cfg.OpenRouterAPIKey != "" {
		t.Fatalf("expected fallback mode without a key, got %q", cfg.OpenRouterAPIKey)
	}
}

func TestLoadKeyFromEnvironment(t *testing.T) {
	unset(t, "OPENROUTER_API_KEY_FILE")
	t.Setenv("OPENROUTER_API_KEY", "  sk-or-env-key \n")

	cfg := Load(testutil.Logger(t))
	if cfg.OpenRouterAPIKey != "sk-or-env-key" {
		t.Fatalf("OpenRouterAPIKey = %q", cfg.OpenRouterAPIKey)
	}
}

func TestLoadKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openrouter.key")
	if err := os.WriteFile(path, []byte("sk-or-file-key\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	unset(t, "OPENROUTER_API_KEY")
	t.Setenv("OPENROUTER_API_KEY_FILE", path)

	cfg := Load(testutil.Logger(t))
	if cfg.OpenRouterAPIKey != "sk-or-file-key" {
		t.Fatalf("OpenRouterAPIKey = %q", cfg.OpenRouterAPIKey)
	}
}

func TestLoadKeyEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openrouter.key")
	if err := os.WriteFile(path, []byte("sk-or-file-key"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("OPENROUTER_API_KEY", "sk-or-env-key")
	t.Setenv("OPENROUTER_API_KEY_FILE", path)

	cfg := Load(testutil.Logger(t))
	if cfg.OpenRouterAPIKey != "sk-or-env-key" {
		t.Fatalf("OpenRouterAPIKey = %q", cfg.OpenRouterAPIKey)
	}
}

func TestLoadKeyFileUnreadable(t *testing.T) {
	unset(t, "OPENROUTER_API_KEY")
	t.Setenv("OPENROUTER_API_KEY_FILE", filepath.Join(t.TempDir(), "missing.key"))

	cfg := Load(testutil.Logger(t))
	if cfg.OpenRouterAPIKey != "" {
		t.Fatalf("expected fallback mode for a missing key file, got %q", cfg.OpenRouterAPIKey)
	}
}
