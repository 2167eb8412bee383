package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/repos"
	"github.com/yungbote/learnsphere-backend/internal/types"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (*types.User, error)
	Signin(ctx context.Context, username, password string) (*types.User, error)
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
	}
}

func (as *authService) Signup(ctx context.Context, username, password string) (*types.User, error) {
	exists, err := as.userRepo.UsernameExists(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &types.User{
		ID:       uuid.New(),
		Username: username,
		Password: password,
		Avatar:   "default_url",
		TotalXP:  0,
		Level:    1,
		Rank:     "Beginner",
	}
	user.SetCompletedTopics(nil)

	created, err := as.userRepo.Create(ctx, nil, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	as.log.Info("User registered", "username", username)
	return created, nil
}

// Signin deliberately returns the same error for an unknown username and a
// wrong password.
func (as *authService) Signin(ctx context.Context, username, password string) (*types.User, error) {
	user, err := as.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
