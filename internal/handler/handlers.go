package handler

import (
	"github.com/vibeqa/auth-service/internal/config"
	"github.com/vibeqa/auth-service/internal/handler/http"
	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/service"
)

// Handlers aggregates the transport-level handlers of the application.
// Only HTTP is served; the struct keeps room for future transports.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
