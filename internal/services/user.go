package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/learnsphere-backend/internal/game"
	"github.com/yungbote/learnsphere-backend/internal/logger"
	"github.com/yungbote/learnsphere-backend/internal/repos"
	"github.com/yungbote/learnsphere-backend/internal/types"
)

// SettingsUpdate carries the mutable profile fields; empty values are left
// untouched.
type SettingsUpdate struct {
	Avatar      string
	School      string
	Description string
	NewPassword string
}

type UserService interface {
	GetDashboard(ctx context.Context, username string) (*types.User, error)
	UpdateSettings(ctx context.Context, username string, update SettingsUpdate) (*types.User, error)
	ApplyXP(ctx context.Context, username, topic string, score int) (*types.User, error)
	ApplyBonus(ctx context.Context, username string, score int) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
	}
}

func (us *userService) getUser(ctx context.Context, username string) (*types.User, error) {
	user, err := us.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (us *userService) GetDashboard(ctx context.Context, username string) (*types.User, error) {
	return us.getUser(ctx, username)
}

func (us *userService) UpdateSettings(ctx context.Context, username string, update SettingsUpdate) (*types.User, error) {
	user, err := us.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if update.School != "" {
		school := update.School
		user.School = &school
	}
	if update.Description != "" {
		description := update.Description
		user.Description = &description
	}
	if update.NewPassword != "" {
		user.Password = update.NewPassword
	}

	if err := us.userRepo.Save(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

func (us *userService) ApplyXP(ctx context.Context, username, topic string, score int) (*types.User, error) {
	user, err := us.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	next := game.ApplyXPEvent(game.State{
		TotalXP: user.TotalXP,
		Level:   user.Level,
		Rank:    user.Rank,
		Topics:  user.CompletedTopics(),
	}, topic, score)

	user.TotalXP = next.TotalXP
	user.Level = next.Level
	user.Rank = next.Rank
	user.SetCompletedTopics(next.Topics)
	user.TopicsCompleted = len(next.Topics)

	if err := us.userRepo.Save(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	us.log.Debug("XP applied", "username", username, "topic", topic, "score", score, "rank", user.Rank)
	return user, nil
}

func (us *userService) ApplyBonus(ctx context.Context, username string, score int) (*types.User, error) {
	user, err := us.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	next := game.ApplyBonus(game.State{
		TotalXP: user.TotalXP,
		Level:   user.Level,
		Rank:    user.Rank,
		Topics:  user.CompletedTopics(),
	}, score)

	user.TotalXP = next.TotalXP

	if err := us.userRepo.Save(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}
