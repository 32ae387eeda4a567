// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/notify"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/models"
)

// IDGenerator issues new recipe ids.
type IDGenerator interface {
	Generate() string
}

// recipeService is the server's RecipeService. Every successful write is
// announced on the bus so that active watchers of the same user re-read.
type recipeService struct {
	repository store.RecipeRepository
	bus        notify.Bus
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

func NewRecipeService(repository store.RecipeRepository, bus notify.Bus, ids IDGenerator, logger *logger.Logger) RecipeService {
	return &recipeService{
		repository: repository,
		bus:        bus,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *recipeService) Save(ctx context.Context, userID int64, recipe models.Recipe) (string, error) {
	recipe.UserID = userID
	if !recipe.IsPersisted() {
		recipe.ID = s.ids.Generate()
	}
	if recipe.Timestamp == 0 {
		recipe.Timestamp = s.now().UnixMilli()
	}

	if err := s.repository.Upsert(ctx, recipe); err != nil {
		return "", err
	}

	s.announce(ctx, userID)
	return recipe.ID, nil
}

func (s *recipeService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return s.repository.ListByUser(ctx, userID)
}

func (s *recipeService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.announce(ctx, userID)
	return nil
}

func (s *recipeService) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	if err := s.repository.SetField(ctx, userID, id, field, value); err != nil {
		return err
	}

	s.announce(ctx, userID)
	return nil
}

// Watch re-reads the list after every bus signal. Signals raised while a
// snapshot is still being delivered coalesce into one re-read, so a slow
// consumer only ever receives the latest state. When the bus drops the
// subscription the stream ends with an ErrChangeFeedClosed snapshot.
func (s *recipeService) Watch(ctx context.Context, userID int64) <-chan models.HistorySnapshot {
	out := make(chan models.HistorySnapshot)
	signals, unsubscribe := s.bus.Subscribe(userID)

	go func() {
		defer close(out)
		defer unsubscribe()

		for {
			recipes, err := s.repository.ListByUser(ctx, userID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.FromContext(ctx).Err(err).
					Str("func", "recipeService.Watch").
					Int64("user_id", userID).
					Msg("failed to read recipes for watcher")
				select {
				case out <- models.HistorySnapshot{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			select {
			case out <- models.HistorySnapshot{Recipes: recipes}:
			case <-ctx.Done():
				return
			}

			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					select {
					case out <- models.HistorySnapshot{Err: ErrChangeFeedClosed}:
					case <-ctx.Done():
					}
					return
				}
			}
		}
	}()

	return out
}

func (s *recipeService) announce(ctx context.Context, userID int64) {
	if err := s.bus.Publish(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("failed to announce recipe change")
	}
}
