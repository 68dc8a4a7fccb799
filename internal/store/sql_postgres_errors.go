package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err is not a
// PostgreSQL driver error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a 23505 on the given constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// isForeignKeyViolation reports whether err is a 23503.
func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation
}

// isInvalidInput reports whether err is a data exception caused by a value
// the column type rejects, such as a malformed UUID.
func isInvalidInput(err error) bool {
	switch postgresError(err) {
	case pgerrcode.InvalidTextRepresentation, pgerrcode.DataException:
		return true
	}
	return false
}
