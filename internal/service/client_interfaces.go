package service

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// HistorySync mirrors a user's remote recipe history into the local cache
// and keeps serving it from the cache when the remote store goes away.
type HistorySync interface {
	// ObserveHistory emits the user's full history, newest first. Every
	// remote batch is written to the local cache before it is emitted. When
	// the remote subscription fails the stream switches, once and for good,
	// to the cached history. The channel is closed only when ctx is done.
	ObserveHistory(ctx context.Context, userID int64) <-chan []models.Recipe

	// Save stores the recipe remotely and returns it with its assigned ID.
	// The local cache is filled by the next remote batch.
	Save(ctx context.Context, userID int64, recipe models.Recipe) (models.Recipe, error)

	// Delete removes the recipe remotely, then from the cache. A remote
	// failure returns ErrWriteFailed and leaves the cache untouched.
	Delete(ctx context.Context, userID int64, id string) error

	// ToggleFavorite sets is_favorite remotely, then in the cache.
	ToggleFavorite(ctx context.Context, userID int64, id string, isFavorite bool) error

	// ClearLocalCache drops every cached recipe of the user.
	ClearLocalCache(ctx context.Context, userID int64) error
}

// HistoryJob keeps one ObserveHistory subscription running in the
// background and hands every emission to a callback. Restart cancels the
// current subscription and opens a new one, which is the only way back
// from the cached fallback to the remote store.
type HistoryJob interface {
	Start(ctx context.Context, userID int64, onUpdate func([]models.Recipe))
	Restart(ctx context.Context)
	Stop()
}

// Generator turns a generation request into markdown recipe text.
type Generator interface {
	Generate(ctx context.Context, request models.GenerationRequest) (string, error)
}

// GenerationService drives the generation screen state.
type GenerationService interface {
	// Run validates the request and generates a recipe. It returns
	// GenerationSuccess or GenerationError, never Initial or Loading.
	Run(ctx context.Context, request models.GenerationRequest) models.GenerationState
}

// ClientAuthService registers and logs the user in against the remote store
// and keeps the session in the settings store.
type ClientAuthService interface {
	// Register creates the account and logs it in.
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)
	// RestoreSession reuses a saved session. ok is false when there is none.
	RestoreSession(ctx context.Context) (session models.Session, ok bool, err error)
	Logout(ctx context.Context) error
}

// SettingsService reads and writes user preferences.
type SettingsService interface {
	DarkMode(ctx context.Context) (bool, error)
	// ToggleDarkMode flips the theme and returns the new value.
	ToggleDarkMode(ctx context.Context) (bool, error)
	HasSeenOnboarding(ctx context.Context) (bool, error)
	MarkOnboardingSeen(ctx context.Context) error

	SaveSession(ctx context.Context, session models.Session) error
	RestoreSession(ctx context.Context) (models.Session, bool, error)
	ClearSession(ctx context.Context) error
}
