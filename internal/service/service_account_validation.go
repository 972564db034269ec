package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts-service/internal/validators"
	"github.com/MKhiriev/go-accounts-service/models"
)

// AccountValidationService validates request payloads before handing them
// to the wrapped AccountService. Reads and deletes pass straight through.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, req models.AccountRequest) (models.Account, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateAccount(ctx, req)
}

func (v *AccountValidationService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	return v.inner.GetAccount(ctx, id)
}

func (v *AccountValidationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ListAccounts(ctx)
}

func (v *AccountValidationService) UpdateAccount(ctx context.Context, id int64, req models.AccountRequest) (models.Account, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateAccount(ctx, id, req)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, id int64) error {
	return v.inner.DeleteAccount(ctx, id)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
