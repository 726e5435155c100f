package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vibeqa/auth-service/internal/config"
	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/mock"
	"github.com/vibeqa/auth-service/internal/store"
	"github.com/vibeqa/auth-service/internal/utils"
	"github.com/vibeqa/auth-service/models"
)

const (
	testSignKey = "test-sign-key-please-ignore"
	testIssuer  = "auth-service-test"
)

// newTestAuthService builds an *authService backed by a gomock repository.
func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, config.Auth{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop()).(*authService)

	return svc, mockRepo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	password := "Sup3r-secret!"

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.NotEqual(t, password, u.PasswordHash, "plaintext password must never reach the store")
			assert.True(t, utils.CheckPassword(password, u.PasswordHash))

			u.UserID = 42
			return u, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, "alice@example.com", password, "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, "alice@example.com", registered.Email)
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "Sup3r-secret!"},
		{name: "empty password", email: "alice@example.com", password: ""},
		{name: "both empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.email, tt.password, "Alice")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, "taken@example.com", "Sup3r-secret!", "Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	password := "Sup3r-secret!"
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       42,
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	got, err := svc.Login(ctx, "alice@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("the-right-Passw0rd!")
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)
	_, unknownEmailErr := svc.Login(ctx, "nobody@example.com", "whatever-Passw0rd!")

	mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       42,
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)
	_, wrongPasswordErr := svc.Login(ctx, "alice@example.com", "the-wrong-Passw0rd!")

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	// Callers must not be able to tell which credential was wrong.
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Login(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{}, errors.New("connection refused"))

	_, err := svc.Login(ctx, "alice@example.com", "Sup3r-secret!")
	require.Error(t, err)
	// Infrastructure failures are not credential failures.
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 42, Email: "alice@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestAuthService_CreateToken_LifetimeIsSevenDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	expiry, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	issuedAt, err := token.Claims.GetIssuedAt()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, expiry.Sub(issuedAt.Time))
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "garbage", tokenString: "not-a-token"},
		{name: "empty", tokenString: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken(testIssuer, 42, "alice@example.com", time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
