package service

import (
	"context"

	"github.com/MKhiriev/go-accounts-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService implements the account use cases on top of the store.
type AccountService interface {
	// CreateAccount stores a new account built from req. A missing
	// date_joined defaults to the current UTC date.
	CreateAccount(ctx context.Context, req models.AccountRequest) (models.Account, error)

	// GetAccount returns the account with the given id or ErrAccountNotFound.
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts returns every account ordered by id.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateAccount replaces the fields of an existing account. The stored
	// date_joined is kept when req does not carry one.
	UpdateAccount(ctx context.Context, id int64, req models.AccountRequest) (models.Account, error)

	// DeleteAccount removes the account if it exists. Deleting a missing id
	// succeeds.
	DeleteAccount(ctx context.Context, id int64) error
}

// AppInfoService exposes static information about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServiceInfo(ctx context.Context) models.ServiceInfo
}
