package service

import (
	"context"

	"github.com/vibeqa/auth-service/models"
)

// AuthService owns the credential and session-token lifecycle: registration,
// login, and token issuance/verification.
type AuthService interface {
	RegisterUser(ctx context.Context, email, password, name string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and updates the profile of an authenticated user.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateName(ctx context.Context, userID int64, name string) (models.User, error)
}
