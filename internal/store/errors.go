package store

import "errors"

// Sentinel errors returned by repositories. Match with errors.Is.
var (
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrNoUserWasFound     = errors.New("no user was found")

	// ErrRecipeNotFound is returned when no recipe with the given id exists
	// for the given user, including when the id belongs to another user.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrUnknownField is returned by partial updates of a field outside the
	// updatable set.
	ErrUnknownField = errors.New("unknown recipe field")

	// ErrInvalidFieldValue is returned when a partial update value has the
	// wrong type for its field.
	ErrInvalidFieldValue = errors.New("invalid recipe field value")
)

// Low-level database errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRows         = errors.New("failed to scan recipe rows")
)
