package service

import (
	"context"
	"fmt"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/store"
	"github.com/vibeqa/auth-service/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given repository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the user record for the given id.
//
// Returns store.ErrNoUserWasFound (wrapped) if the account no longer exists —
// an authenticated identity does not guarantee the row is still there.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateName changes the display name of the given user and returns the
// updated record.
func (p *profileService) UpdateName(ctx context.Context, userID int64, name string) (models.User, error) {
	updatedUser, err := p.userRepository.UpdateUserName(ctx, userID, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user name update failed")
		return models.User{}, fmt.Errorf("user name update failed: %w", err)
	}

	return updatedUser, nil
}
