package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/notify"
	"github.com/MKhiriev/vibechef/models"
)

// localRecipeCache is the SQLite implementation of LocalRecipeCache.
// Successful writes are announced on changes so that WatchByUser streams
// can re-read.
type localRecipeCache struct {
	*DB
	changes notify.Bus
	logger  *logger.Logger
}

func NewLocalRecipeCache(db *DB, changes notify.Bus, logger *logger.Logger) LocalRecipeCache {
	return &localRecipeCache{
		DB:      db,
		changes: changes,
		logger:  logger,
	}
}

func (l *localRecipeCache) UpsertAll(ctx context.Context, recipes ...models.Recipe) error {
	log := logger.FromContext(ctx)

	if len(recipes) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localRecipeCache.UpsertAll").
			Int("count", len(recipes)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	touched := make(map[int64]struct{}, 1)
	for _, recipe := range recipes {
		query, args, err := buildReplaceRecipeQuery(recipe)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localRecipeCache.UpsertAll").
				Int64("user_id", recipe.UserID).
				Str("recipe_id", recipe.ID).
				Msg("failed to write recipe")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		touched[recipe.UserID] = struct{}{}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localRecipeCache.UpsertAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	for userID := range touched {
		l.announce(ctx, userID)
	}

	return nil
}

func (l *localRecipeCache) QueryByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query, args, err := buildLocalListRecipesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipes, err := queryRecipes(ctx, l.DB.DB, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecipeCache.QueryByUser").
			Int64("user_id", userID).
			Msg("failed to query cached recipes")
		return nil, err
	}

	return recipes, nil
}

func (l *localRecipeCache) WatchByUser(ctx context.Context, userID int64) <-chan []models.Recipe {
	out := make(chan []models.Recipe)
	signals, unsubscribe := l.changes.Subscribe(userID)

	go func() {
		defer close(out)
		defer unsubscribe()

		for {
			recipes, err := l.QueryByUser(ctx, userID)
			if err == nil {
				select {
				case out <- recipes:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

func (l *localRecipeCache) DeleteByID(ctx context.Context, userID int64, id string) error {
	query, args, err := buildLocalDeleteRecipeQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.exec(ctx, "localRecipeCache.DeleteByID", userID, query, args...)
}

func (l *localRecipeCache) UpdateFavorite(ctx context.Context, userID int64, id string, isFavorite bool) error {
	query, args, err := buildSetFieldQuery(sqlite, userID, id, models.FieldIsFavorite, isFavorite)
	if err != nil {
		return err
	}

	return l.exec(ctx, "localRecipeCache.UpdateFavorite", userID, query, args...)
}

func (l *localRecipeCache) DeleteAllByUser(ctx context.Context, userID int64) error {
	query, args, err := buildLocalDeleteAllQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.exec(ctx, "localRecipeCache.DeleteAllByUser", userID, query, args...)
}

// exec runs a single-statement write and announces it. Affecting zero rows is
// not an error: the cache may simply not hold the row.
func (l *localRecipeCache) exec(ctx context.Context, funcName string, userID int64, query string, args ...any) error {
	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("failed to write local cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	l.announce(ctx, userID)
	return nil
}

func (l *localRecipeCache) announce(ctx context.Context, userID int64) {
	if err := l.changes.Publish(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("failed to announce cache change")
	}
}
