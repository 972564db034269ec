package http

import (
	"time"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	forceHTTPS     bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().Bool("force_https", security.ForceHTTPS).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		forceHTTPS:     security.ForceHTTPS,
		logger:         logger,
	}
}
