package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/learnsphere-backend/internal/config"
	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/types"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewService opens Postgres when DATABASE_URL carries a postgres DSN,
// otherwise a local SQLite file. Mirrors the deployment tiers the backend
// runs on: managed Postgres when provisioned, file-based store when not.
func NewService(cfg config.Config, log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	var (
		conn *gorm.DB
		err  error
	)
	if cfg.DatabaseURL != "" && strings.Contains(cfg.DatabaseURL, "postgres") {
		serviceLog.Info("Connecting to Postgres...")
		conn, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			serviceLog.Error("Failed to connect to Postgres", "error", err)
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
	} else {
		serviceLog.Info("Using local SQLite store", "path", cfg.SQLitePath)
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			serviceLog.Error("Failed to open SQLite store", "error", err)
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
	}

	return &Service{db: conn, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(&types.User{}); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
