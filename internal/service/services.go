package service

import (
	"github.com/vibeqa/auth-service/internal/config"
	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/store"
)

// Services bundles all business-logic services for injection into the
// transport layer.
type Services struct {
	AuthService
	ProfileService
}

// NewServices wires every service to the shared storage layer and config.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
	}
}
