package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/models"
)

// Settings keys.
const (
	SettingDarkMode          = "dark_mode"
	SettingHasSeenOnboarding = "has_seen_onboarding"
	SettingSessionUserID     = "session_user_id"
	SettingSessionLogin      = "session_login"
	SettingSessionToken      = "session_token"
)

type settingsService struct {
	repository store.SettingsRepository

	logger *logger.Logger
}

func NewSettingsService(repository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{repository: repository, logger: logger}
}

func (s *settingsService) DarkMode(ctx context.Context) (bool, error) {
	return s.getBool(ctx, SettingDarkMode)
}

func (s *settingsService) ToggleDarkMode(ctx context.Context) (bool, error) {
	current, err := s.getBool(ctx, SettingDarkMode)
	if err != nil {
		return false, err
	}

	if err = s.repository.Set(ctx, SettingDarkMode, strconv.FormatBool(!current)); err != nil {
		return current, fmt.Errorf("save %s: %w", SettingDarkMode, err)
	}
	return !current, nil
}

func (s *settingsService) HasSeenOnboarding(ctx context.Context) (bool, error) {
	return s.getBool(ctx, SettingHasSeenOnboarding)
}

func (s *settingsService) MarkOnboardingSeen(ctx context.Context) error {
	return s.repository.Set(ctx, SettingHasSeenOnboarding, strconv.FormatBool(true))
}

func (s *settingsService) SaveSession(ctx context.Context, session models.Session) error {
	values := [][2]string{
		{SettingSessionUserID, strconv.FormatInt(session.UserID, 10)},
		{SettingSessionLogin, session.Login},
		{SettingSessionToken, session.Token},
	}
	for _, kv := range values {
		if err := s.repository.Set(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("save %s: %w", kv[0], err)
		}
	}
	return nil
}

// RestoreSession returns ok=false when no complete session is stored.
func (s *settingsService) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	rawID, ok, err := s.repository.Get(ctx, SettingSessionUserID)
	if err != nil || !ok {
		return models.Session{}, false, err
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		s.logger.Warn().Str("value", rawID).Msg("stored session has malformed user id")
		return models.Session{}, false, nil
	}

	login, _, err := s.repository.Get(ctx, SettingSessionLogin)
	if err != nil {
		return models.Session{}, false, err
	}
	token, _, err := s.repository.Get(ctx, SettingSessionToken)
	if err != nil {
		return models.Session{}, false, err
	}

	session := models.Session{UserID: userID, Login: login, Token: token}
	return session, session.Valid(), nil
}

func (s *settingsService) ClearSession(ctx context.Context) error {
	for _, key := range []string{SettingSessionUserID, SettingSessionLogin, SettingSessionToken} {
		if err := s.repository.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

// getBool treats a missing or unparsable value as false.
func (s *settingsService) getBool(ctx context.Context, key string) (bool, error) {
	raw, ok, err := s.repository.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn().Str("key", key).Str("value", raw).Msg("ignoring malformed boolean setting")
		return false, nil
	}
	return value, nil
}
