package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repository which store sentinel a driver error maps to.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors, syntax errors
	// and anything else that points at a server side fault.
	Unclassified ErrorClassification = iota

	// ConstraintViolation means the row itself was rejected: a NOT NULL,
	// CHECK, length or uniqueness rule failed. Retrying the same row will
	// fail again.
	ConstraintViolation

	// ConnectionFailure means the database could not be reached or refused
	// the work.
	ConnectionFailure
)

// String implements fmt.Stringer for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case ConstraintViolation:
		return "constraint_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ConnectionFailure
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// ConstraintViolation:
//   - Class 22: data exceptions (value too long, invalid datetime format, ...)
//   - Class 23: integrity constraint violations
//
// ConnectionFailure:
//   - Class 08: connection exceptions
//   - Class 57: operator intervention (admin shutdown, cannot connect now)
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsDataException(pgErr.Code),
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return ConstraintViolation

	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return ConnectionFailure
	}

	return Unclassified
}
