package http

import (
	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/service"
	"github.com/vibeqa/auth-service/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator *validators.CredentialsValidator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewCredentialsValidator(),
		logger:    logger,
	}
}
