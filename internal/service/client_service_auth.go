package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/adapter"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/validators"
	"github.com/MKhiriev/vibechef/models"
)

type clientAuthService struct {
	adapter   adapter.RemoteStore
	settings  SettingsService
	validator validators.Validator

	logger *logger.Logger
}

// NewClientAuthService creates a ClientAuthService. The remote store keeps
// the bearer token for later calls; settings persists it across runs.
func NewClientAuthService(remote adapter.RemoteStore, settings SettingsService, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   remote,
		settings:  settings,
		validator: validator,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validate(ctx, user); err != nil {
		return models.Session{}, err
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, registered)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validate(ctx, user); err != nil {
		return models.Session{}, err
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, found)
}

// RestoreSession hands a saved token back to the remote store. The token is
// not checked against the server so cached history stays readable offline.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	session, ok, err := a.settings.RestoreSession(ctx)
	if err != nil || !ok {
		return models.Session{}, false, err
	}

	a.adapter.SetToken(session.Token)
	return session, true, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.settings.ClearSession(ctx)
}

func (a *clientAuthService) startSession(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{UserID: user.UserID, Login: user.Login, Token: a.adapter.Token()}
	if !session.Valid() {
		return models.Session{}, fmt.Errorf("%w: server returned no session", ErrLoginOnServer)
	}

	if err := a.settings.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

func (a *clientAuthService) validate(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}
