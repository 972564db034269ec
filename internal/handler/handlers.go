package handler

import (
	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/handler/http"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, security config.Security, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, security, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
