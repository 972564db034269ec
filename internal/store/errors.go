package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a read or update targets an id
	// that has no row.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrConstraintViolation is returned when the database rejects a row
	// because it breaks a NOT NULL, CHECK, length or uniqueness constraint.
	ErrConstraintViolation = errors.New("account violates a database constraint")

	// ErrDatabaseUnavailable is returned when the database connection is
	// lost or the server refuses new work.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrUnsupportedDriver is returned by [NewDB] for unknown driver names.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows into accounts
	// fails.
	ErrScanningRows = errors.New("failed to scan account rows")
)
