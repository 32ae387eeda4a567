package service

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecipeService is the authoritative recipe store behind the server
// transports. Every method is scoped by userID.
type RecipeService interface {
	// Save stores the recipe for userID and returns its id. An empty
	// recipe.ID gets a new UUIDv7.
	Save(ctx context.Context, userID int64, recipe models.Recipe) (string, error)
	List(ctx context.Context, userID int64) ([]models.Recipe, error)
	Delete(ctx context.Context, userID int64, id string) error
	SetField(ctx context.Context, userID int64, id, field string, value any) error

	// Watch pushes the user's full list now and after every change. On a
	// read failure it pushes a snapshot with Err set and closes. The
	// channel also closes when ctx is done.
	Watch(ctx context.Context, userID int64) <-chan models.HistorySnapshot
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// validation.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}
