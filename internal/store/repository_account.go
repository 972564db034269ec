package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// Queries are built with squirrel using the dialect of the wrapped [DB] and
// rows are scanned by sqlx through the db tags of [models.Account].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Account
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error inserting account")
		return models.Account{}, r.db.classify(err, ErrExecutingQuery)
	}

	return created, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByID").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	if err = r.db.GetContext(ctx, &account, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindByID").Int64("id", id).Msg("error selecting account")
		return models.Account{}, r.db.classify(err, ErrExecutingQuery)
	}

	return account, nil
}

func (r *accountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllAccountsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	accounts := make([]models.Account, 0)
	if err = r.db.SelectContext(ctx, &accounts, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAll").Msg("error selecting accounts")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error building update query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Account
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.Update").Int64("id", account.ID).Msg("error updating account")
		return models.Account{}, r.db.classify(err, ErrExecutingQuery)
	}

	return updated, nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error building delete query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Int64("id", id).Msg("error deleting account")
		return false, r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		// the row is gone either way
		log.Warn().Err(err).Str("func", "*accountRepository.Delete").Msg("rows affected is not supported")
		return true, nil
	}

	return affected > 0, nil
}
