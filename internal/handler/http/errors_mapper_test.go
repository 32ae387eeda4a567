package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"unknown field wins over invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, store.ErrUnknownField), http.StatusBadRequest, app.MsgUnknownField},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid field value", store.ErrInvalidFieldValue, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"no user id", service.ErrValidationNoUserID, http.StatusBadRequest, app.MsgNoUserIDProvided},
		{"empty recipe id", service.ErrEmptyRecipeID, http.StatusBadRequest, app.MsgEmptyRecipeID},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"recipe not found", fmt.Errorf("delete: %w", store.ErrRecipeNotFound), http.StatusNotFound, app.MsgRecipeNotFound},
		{"login taken", store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
