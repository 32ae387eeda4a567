package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrValidationNoUserID = errors.New("no user ID was given")
	ErrEmptyRecipeID      = errors.New("recipe id is empty")

	// ErrChangeFeedClosed ends a watch whose change notifications stopped
	// before the watcher went away.
	ErrChangeFeedClosed = errors.New("change feed closed")
)

// Client-side errors.
var (
	// ErrRemoteUnavailable means the remote store could not be reached or
	// its subscription failed. It is logged by history observation and
	// never surfaced through the history stream.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrWriteFailed wraps any failure of a user-initiated remote write.
	// Writes are never retried automatically.
	ErrWriteFailed = errors.New("write failed")

	// ErrGenerationTimeout means the language model did not answer within
	// the generation deadline.
	ErrGenerationTimeout = errors.New("recipe generation timed out")

	// ErrGenerationFailed covers transport errors and non-2xx answers of the
	// language model.
	ErrGenerationFailed = errors.New("recipe generation failed")

	// ErrEmptyResponse is a generation failure where the model returned no
	// text.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrValidationFailed means user input was rejected before any call was
	// made.
	ErrValidationFailed = errors.New("validation failed")

	ErrNotLoggedIn      = errors.New("not logged in")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
