package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// DB is the shared database handle. It is created once at startup and
// passed explicitly to every repository.
type DB struct {
	*sqlx.DB

	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection for cfg.Driver, verifies it with a ping and
// returns the wrapped handle.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case migrations.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// newDB wraps an opened connection. Placeholders follow the driver:
// $1.. for PostgreSQL, ? for SQLite.
func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == migrations.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 sqlx.NewDb(conn, driver),
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB.DB, db.driver)
}

// classify maps err to one of the store sentinels so callers can match it
// with errors.Is. The original error stays in the chain.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	class := db.errorClassificator.Classify(err)
	db.logger.Debug().Err(err).Str("func", "*DB.classify").Stringer("classification", class).Msg("database error classified")

	switch class {
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
