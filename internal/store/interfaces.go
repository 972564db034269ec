package store

import (
	"context"

	"github.com/MKhiriev/go-accounts-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

// AccountRepository persists [models.Account] rows. Every method is a single
// statement, so a row is either fully written or not written at all.
type AccountRepository interface {
	// Create inserts account and returns it with the store-assigned ID.
	// The ID of the argument is ignored.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// FindByID returns the account with the given id or [ErrAccountNotFound].
	FindByID(ctx context.Context, id int64) (models.Account, error)

	// FindAll returns every account ordered by id. The result is never nil.
	FindAll(ctx context.Context) ([]models.Account, error)

	// Update overwrites all mutable columns of the row identified by
	// account.ID and returns the stored row, or [ErrAccountNotFound].
	Update(ctx context.Context, account models.Account) (models.Account, error)

	// Delete removes the row with the given id. It reports whether a row
	// existed; deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ErrorClassificator maps driver specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
