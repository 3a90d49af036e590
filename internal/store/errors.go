package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when an update or lookup targets a
	// (collection, id) pair that does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrStoreUnavailable wraps backend failures that may succeed on a later
	// attempt (lost connection, deadlock, busy database).
	ErrStoreUnavailable = errors.New("document store temporarily unavailable")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown backend.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a backend-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrEncodingPayload is returned when a payload cannot be converted to or
	// from its stored JSON form.
	ErrEncodingPayload = errors.New("failed to encode document payload")
)
