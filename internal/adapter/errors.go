package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("remote store unavailable")

	// ErrSubscriptionClosed is delivered as the last snapshot when the server
	// ends the push channel without an explicit error.
	ErrSubscriptionClosed = errors.New("subscription closed by remote")
)
