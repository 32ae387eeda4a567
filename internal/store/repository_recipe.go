package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/models"
)

// recipeRepository is the PostgreSQL implementation of RecipeRepository.
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recipeRepository) Upsert(ctx context.Context, recipe models.Recipe) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecipeQuery(recipe)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Upsert").
			Int64("user_id", recipe.UserID).
			Str("recipe_id", recipe.ID).
			Msg("failed to upsert recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrRecipeNotFound)
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recipes []models.Recipe
	err = r.withRetry(ctx, func() error {
		var queryErr error
		recipes, queryErr = queryRecipes(ctx, r.DB.DB, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to list recipes")
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecipeQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Delete").
			Int64("user_id", userID).
			Str("recipe_id", id).
			Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrRecipeNotFound)
}

func (r *recipeRepository) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetFieldQuery(psql, userID, id, field, value)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.SetField").
			Int64("user_id", userID).
			Str("recipe_id", id).
			Str("field", field).
			Msg("failed to update recipe field")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrRecipeNotFound)
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryRecipes(ctx context.Context, q queryer, query string, args ...any) ([]models.Recipe, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 16)
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.UserID,
			&recipe.Title,
			&recipe.Content,
			&recipe.Timestamp,
			&recipe.IsFavorite,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
