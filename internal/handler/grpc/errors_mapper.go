package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

// errorStatuses mirrors the HTTP error table; the first match wins.
var errorStatuses = []errorStatus{
	{store.ErrUnknownField, codes.InvalidArgument, app.MsgUnknownField},
	{service.ErrValidationNoUserID, codes.InvalidArgument, app.MsgNoUserIDProvided},
	{service.ErrEmptyRecipeID, codes.InvalidArgument, app.MsgEmptyRecipeID},
	{store.ErrInvalidFieldValue, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrRecipeNotFound, codes.NotFound, app.MsgRecipeNotFound},
	{store.ErrLoginAlreadyExists, codes.AlreadyExists, app.MsgLoginAlreadyExists},

	{context.DeadlineExceeded, codes.DeadlineExceeded, app.MsgInternalServerError},
	{context.Canceled, codes.Canceled, app.MsgInternalServerError},
}

// statusFromError converts a service error to a gRPC status error whose
// message is one of the app.Msg* constants.
func statusFromError(err error) error {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return status.Error(s.code, s.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
