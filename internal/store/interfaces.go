package store

import (
	"context"

	"github.com/MKhiriev/vibechef/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecipeRepository is the server's authoritative recipe table. Every method
// is scoped by user.
type RecipeRepository interface {
	// Upsert inserts or updates the recipe by id. It returns
	// ErrRecipeNotFound when the id belongs to another user.
	Upsert(ctx context.Context, recipe models.Recipe) error
	// ListByUser returns the user's recipes, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error)
	Delete(ctx context.Context, userID int64, id string) error
	SetField(ctx context.Context, userID int64, id, field string, value any) error
}
