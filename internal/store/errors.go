package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account with the same
	// (normalized) email is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")

	// ErrTrackingNotFound is returned when the account has no tracking record.
	ErrTrackingNotFound = errors.New("no tracked products found for user")

	// ErrTrackedProductNotFound is returned when the tracking record exists
	// but holds no entry for the product.
	ErrTrackedProductNotFound = errors.New("product not found in tracked list")

	// ErrAlreadyTracked is returned by the conditional insert of a tracked
	// entry when the account already tracks the product.
	ErrAlreadyTracked = errors.New("product already tracked")

	// ErrInvalidID is returned when an identifier has a shape the backend
	// cannot address (e.g. a non-hex MongoDB ObjectID).
	ErrInvalidID = errors.New("invalid identifier")
)

// Low-level database operation errors. These are wrapped by repository
// methods when an operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingDocument is returned when a stored document or JSON column
	// cannot be decoded.
	ErrDecodingDocument = errors.New("failed to decode stored document")
)
