package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order and the first match wins, so more
// specific errors must come before the ones they are wrapped with.
var errorResponses = []errorResponse{
	{store.ErrUnknownField, http.StatusBadRequest, app.MsgUnknownField},
	{service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
	{service.ErrEmptyRecipeID, http.StatusBadRequest, app.MsgEmptyRecipeID},
	{store.ErrInvalidFieldValue, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrRecipeNotFound, http.StatusNotFound, app.MsgRecipeNotFound},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{context.DeadlineExceeded, http.StatusServiceUnavailable, app.MsgInternalServerError},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status and message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
