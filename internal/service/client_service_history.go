// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/adapter"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/models"
)

type historySync struct {
	remote adapter.RemoteStore
	cache  store.LocalRecipeCache

	logger *logger.Logger
}

func NewHistorySync(remote adapter.RemoteStore, cache store.LocalRecipeCache, logger *logger.Logger) HistorySync {
	return &historySync{
		remote: remote,
		cache:  cache,
		logger: logger,
	}
}

func (h *historySync) ObserveHistory(ctx context.Context, userID int64) <-chan []models.Recipe {
	out := make(chan []models.Recipe)

	go func() {
		defer close(out)

		err := h.observeRemote(ctx, userID, out)
		if err == nil || ctx.Err() != nil {
			return
		}

		h.logger.Warn().Err(err).
			Str("func", "historySync.ObserveHistory").
			Int64("user_id", userID).
			Msg("remote history unavailable, serving local cache")

		h.observeLocal(ctx, userID, out)
	}()

	return out
}

// observeRemote forwards remote batches until ctx is done (nil) or the
// subscription fails (non-nil). The subscription context is cancelled on
// return, which releases the remote registration.
func (h *historySync) observeRemote(ctx context.Context, userID int64, out chan<- []models.Recipe) error {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots, err := h.remote.Subscribe(subCtx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	for {
		var snapshot models.HistorySnapshot
		var ok bool

		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok = <-snapshots:
		}

		if !ok {
			return fmt.Errorf("%w: subscription closed", ErrRemoteUnavailable)
		}
		if snapshot.Err != nil {
			return fmt.Errorf("%w: %w", ErrRemoteUnavailable, snapshot.Err)
		}

		recipes := ownedBy(userID, snapshot.Recipes)
		if err = h.cache.UpsertAll(ctx, recipes...); err != nil {
			return fmt.Errorf("mirror remote batch: %w", err)
		}

		select {
		case out <- recipes:
		case <-ctx.Done():
			return nil
		}
	}
}

// observeLocal forwards cache snapshots. It holds out open until ctx is done
// even if the cache stream ends first.
func (h *historySync) observeLocal(ctx context.Context, userID int64, out chan<- []models.Recipe) {
	local := h.cache.WatchByUser(ctx, userID)

	for {
		var recipes []models.Recipe
		var ok bool

		select {
		case <-ctx.Done():
			return
		case recipes, ok = <-local:
		}

		if !ok {
			<-ctx.Done()
			return
		}
		if recipes == nil {
			recipes = []models.Recipe{}
		}

		select {
		case out <- recipes:
		case <-ctx.Done():
			return
		}
	}
}

func (h *historySync) Save(ctx context.Context, userID int64, recipe models.Recipe) (models.Recipe, error) {
	recipe.UserID = userID

	id, err := h.remote.Upsert(ctx, userID, recipe)
	if err != nil {
		h.logger.Err(err).Str("func", "historySync.Save").Int64("user_id", userID).Msg("remote upsert failed")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrWriteFailed, mapAdapterError(err))
	}

	recipe.ID = id
	return recipe, nil
}

func (h *historySync) Delete(ctx context.Context, userID int64, id string) error {
	if err := h.remote.Delete(ctx, userID, id); err != nil {
		h.logger.Err(err).Str("func", "historySync.Delete").Int64("user_id", userID).Str("id", id).Msg("remote delete failed")
		return fmt.Errorf("%w: %w", ErrWriteFailed, mapAdapterError(err))
	}

	if err := h.cache.DeleteByID(ctx, userID, id); err != nil {
		return fmt.Errorf("delete cached recipe: %w", err)
	}

	return nil
}

func (h *historySync) ToggleFavorite(ctx context.Context, userID int64, id string, isFavorite bool) error {
	if err := h.remote.SetField(ctx, userID, id, models.FieldIsFavorite, isFavorite); err != nil {
		h.logger.Err(err).Str("func", "historySync.ToggleFavorite").Int64("user_id", userID).Str("id", id).Msg("remote update failed")
		return fmt.Errorf("%w: %w", ErrWriteFailed, mapAdapterError(err))
	}

	if err := h.cache.UpdateFavorite(ctx, userID, id, isFavorite); err != nil {
		return fmt.Errorf("update cached recipe: %w", err)
	}

	return nil
}

func (h *historySync) ClearLocalCache(ctx context.Context, userID int64) error {
	return h.cache.DeleteAllByUser(ctx, userID)
}

// ownedBy stamps userID on every recipe so that cached rows stay scoped to
// the subscription's user.
func ownedBy(userID int64, recipes []models.Recipe) []models.Recipe {
	owned := make([]models.Recipe, len(recipes))
	for i, r := range recipes {
		r.UserID = userID
		owned[i] = r
	}
	return owned
}
