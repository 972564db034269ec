package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/store"
	"github.com/MKhiriev/go-accounts-service/models"
)

type accountService struct {
	repository store.AccountRepository
	now        func() time.Time

	logger *logger.Logger
}

// NewAccountService builds the plain AccountService. Input validation is
// added by wrapping it with [NewAccountValidationService].
func NewAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req models.AccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	account := req.ToAccount(0, models.NewDate(s.now().UTC()))

	created, err := s.repository.Create(ctx, account)
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateAccount").Msg("error creating account")
		return models.Account{}, mapStoreError(err)
	}

	log.Info().Int64("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, fmt.Errorf("%w: %w", ErrAccountNotFound, ErrInvalidAccountID)
	}

	account, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return models.Account{}, mapStoreError(err)
	}

	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	accounts, err := s.repository.FindAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ListAccounts").Msg("error listing accounts")
		return nil, mapStoreError(err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id int64, req models.AccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.Account{}, fmt.Errorf("%w: %w", ErrAccountNotFound, ErrInvalidAccountID)
	}

	var joined models.Date
	if req.DateJoined == nil || req.DateJoined.IsZero() {
		// keep the stored date
		stored, err := s.repository.FindByID(ctx, id)
		if err != nil {
			return models.Account{}, mapStoreError(err)
		}
		joined = stored.DateJoined
	}

	updated, err := s.repository.Update(ctx, req.ToAccount(id, joined))
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateAccount").Int64("account_id", id).Msg("error updating account")
		return models.Account{}, mapStoreError(err)
	}

	log.Info().Int64("account_id", id).Msg("account updated")
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*accountService.DeleteAccount").Int64("account_id", id).Msg("error deleting account")
		return mapStoreError(err)
	}

	log.Info().Int64("account_id", id).Bool("existed", deleted).Msg("account deleted")
	return nil
}

// mapStoreError translates store sentinels into service sentinels. Unknown
// errors are returned unchanged.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return err
	}
}
