package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/notify"
)

// ClientStorages groups the client's local repositories, all backed by one
// SQLite file.
type ClientStorages struct {
	RecipeCache LocalRecipeCache
	Settings    SettingsRepository

	db      *DB
	changes notify.Bus
}

// NewClientStorages opens the cache file, applies migrations and builds the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.CacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	changes := notify.NewMemoryBus()

	return &ClientStorages{
		RecipeCache: NewLocalRecipeCache(db, changes, logger),
		Settings:    NewSettingsRepository(db),
		db:          db,
		changes:     changes,
	}
}

// Close stops every active watch and closes the database.
func (s *ClientStorages) Close() error {
	_ = s.changes.Close()
	return s.db.Close()
}
