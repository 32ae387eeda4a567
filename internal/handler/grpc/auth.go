package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/models"
)

func (h *Handler) Register(ctx context.Context, req *rpc.AuthRequest) (*rpc.AuthResponse, error) {
	user, err := h.services.AuthService.RegisterUser(ctx, models.User{Login: req.Login, Password: req.Password})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil, statusFromError(err)
		}
		logger.FromContext(ctx).Err(err).Msg("unexpected error occurred during user registration")
		return nil, status.Error(codes.Internal, app.MsgRegistrationFailed)
	}

	return h.issueToken(ctx, user, app.MsgRegistrationFailed)
}

func (h *Handler) Login(ctx context.Context, req *rpc.AuthRequest) (*rpc.AuthResponse, error) {
	user, err := h.services.AuthService.Login(ctx, models.User{Login: req.Login, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, store.ErrNoUserWasFound):
			return nil, statusFromError(err)
		default:
			logger.FromContext(ctx).Err(err).Msg("unexpected error occurred during user login")
			return nil, status.Error(codes.Internal, app.MsgLoginFailed)
		}
	}

	return h.issueToken(ctx, user, app.MsgLoginFailed)
}

func (h *Handler) issueToken(ctx context.Context, user models.User, failMessage string) (*rpc.AuthResponse, error) {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("creation of token failed")
		return nil, status.Error(codes.Internal, failMessage)
	}

	return &rpc.AuthResponse{Token: token.SignedString, UserID: user.UserID}, nil
}
