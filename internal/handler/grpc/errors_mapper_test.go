package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, store.ErrUnknownField), codes.InvalidArgument, app.MsgUnknownField},
		{service.ErrEmptyRecipeID, codes.InvalidArgument, app.MsgEmptyRecipeID},
		{store.ErrInvalidFieldValue, codes.InvalidArgument, app.MsgInvalidDataProvided},
		{service.ErrWrongPassword, codes.Unauthenticated, app.MsgInvalidLoginPassword},
		{fmt.Errorf("list: %w", store.ErrRecipeNotFound), codes.NotFound, app.MsgRecipeNotFound},
		{store.ErrLoginAlreadyExists, codes.AlreadyExists, app.MsgLoginAlreadyExists},
		{context.DeadlineExceeded, codes.DeadlineExceeded, app.MsgInternalServerError},
		{errors.New("boom"), codes.Internal, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st := status.Convert(statusFromError(tt.err))

			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
