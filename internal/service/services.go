package service

import (
	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The account service is
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	accounts := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, logger),
	)

	return &Services{
		AccountService: accounts,
		AppInfoService: appInfo,
	}, nil
}
