package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/vibeqa/auth-service/models"
)

// UserRepository is the persistence contract the auth service depends on.
// Implementations must map a database uniqueness violation on email to
// [ErrEmailAlreadyExists] and an empty result set to [ErrNoUserWasFound].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUserName(ctx context.Context, userID int64, name string) (models.User, error)
}
