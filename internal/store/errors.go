package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique index on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup, update, or delete targets a
	// user_id or email that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPlaceNotFound is returned when a lookup, update, or delete targets a
	// place_id that does not exist.
	ErrPlaceNotFound = errors.New("place was not found")

	// ErrFavoriteNotFound is returned when deleting a (user_id, place_id)
	// pair that is not stored.
	ErrFavoriteNotFound = errors.New("favorite was not found")

	// ErrReferenceNotFound is returned when a favorite references a user or
	// place that was removed concurrently (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced record was not found")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSessionStore is returned when the session backend cannot be reached
	// or returns malformed data.
	ErrSessionStore = errors.New("session store failure")
)
