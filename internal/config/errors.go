package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyDatabaseDSN indicates that no connection string was provided
	// by any configuration source.
	ErrEmptyDatabaseDSN = errors.New("database DSN is not specified")
	// ErrUnsupportedDatabaseDriver indicates a driver name other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDatabaseDriver = errors.New("unsupported database driver")
	// ErrEmptyServerAddress indicates a missing HTTP listen address.
	ErrEmptyServerAddress = errors.New("server address is not specified")
)
