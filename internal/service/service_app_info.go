package service

import (
	"context"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/models"
)

// AccountsPath is the collection path advertised by the service index.
const AccountsPath = "/accounts"

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Name:    s.appName,
		Version: s.appVersion,
		Paths:   AccountsPath,
	}
}
