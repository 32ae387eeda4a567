package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/logger"
)

type settingsRepository struct {
	*DB
}

func NewSettingsRepository(db *DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.Get").Str("key", key).Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *settingsRepository) Set(ctx context.Context, key, value string) error {
	if _, err := s.DB.ExecContext(ctx, setSetting, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.Set").Str("key", key).Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
