package store

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRecipeCache is the client's disposable mirror of remote history.
// Every method is scoped by user.
type LocalRecipeCache interface {
	// UpsertAll writes all recipes in one transaction. Rows missing from
	// recipes are left untouched.
	UpsertAll(ctx context.Context, recipes ...models.Recipe) error
	// QueryByUser returns the user's cached recipes, newest first.
	QueryByUser(ctx context.Context, userID int64) ([]models.Recipe, error)
	// WatchByUser emits the current contents, then a fresh snapshot after
	// every write touching the user. The channel closes when ctx is done.
	WatchByUser(ctx context.Context, userID int64) <-chan []models.Recipe
	DeleteByID(ctx context.Context, userID int64, id string) error
	UpdateFavorite(ctx context.Context, userID int64, id string, isFavorite bool) error
	DeleteAllByUser(ctx context.Context, userID int64) error
}

// SettingsRepository is a persistent string key/value store.
type SettingsRepository interface {
	// Get returns ok=false when key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
