// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the accounts REST API.
//
// The primary abstraction is [AccountsClient], which hides request building,
// JSON (de)serialization and status handling behind plain Go calls. The
// package ships an HTTP/REST implementation ([NewHTTPAccountsClient]) built
// on resty.
//
// Non-2xx responses are mapped to an [*APIError] wrapping one of the sentinel
// values in errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadRequest] for 400) and [errors.As] to reach the decoded error
// body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_client_mock.go -package=mock

// AccountsClient defines typed access to the accounts REST API.
type AccountsClient interface {
	// CreateAccount sends POST /accounts and returns the stored record,
	// including the id assigned by the server.
	CreateAccount(ctx context.Context, req models.AccountRequest) (models.Account, error)

	// GetAccount fetches GET /accounts/{id}. A missing record is reported
	// as [ErrNotFound].
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts fetches GET /accounts. The result is never nil.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateAccount sends PUT /accounts/{id} and returns the updated record.
	UpdateAccount(ctx context.Context, id int64, req models.AccountRequest) (models.Account, error)

	// DeleteAccount sends DELETE /accounts/{id}. Deleting a missing record
	// is not an error.
	DeleteAccount(ctx context.Context, id int64) error

	// Health calls the liveness endpoint GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// ServiceInfo fetches the metadata document served at GET /.
	ServiceInfo(ctx context.Context) (models.ServiceInfo, error)
}
