package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/vibechef/models"
)

const (
	createUser = `INSERT INTO users (login, password)
    VALUES ($1, $2)
    RETURNING user_id, login, password, created_at;`

	findUserByLogin = `SELECT user_id, login, password, created_at
    FROM users
    WHERE login = $1;`
)

var recipeColumns = []string{"id", "user_id", "title", "content", "timestamp", "is_favorite"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertRecipeQuery inserts the recipe or updates the row with the same
// id. The update only applies when the existing row has the same owner, so an
// id of another user affects zero rows.
func buildUpsertRecipeQuery(recipe models.Recipe) (string, []any, error) {
	return psql.Insert(models.Recipe{}.TableName()).
		Columns(recipeColumns...).
		Values(recipe.ID, recipe.UserID, recipe.Title, recipe.Content, recipe.Timestamp, recipe.IsFavorite).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			timestamp = EXCLUDED.timestamp,
			is_favorite = EXCLUDED.is_favorite
		WHERE recipes.user_id = EXCLUDED.user_id`).
		ToSql()
}

func buildListRecipesQuery(userID int64) (string, []any, error) {
	return psql.Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC").
		ToSql()
}

func buildDeleteRecipeQuery(userID int64, id string) (string, []any, error) {
	return psql.Delete(models.Recipe{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildSetFieldQuery updates one whitelisted column of a user's recipe.
func buildSetFieldQuery(builder sq.StatementBuilderType, userID int64, id, field string, value any) (string, []any, error) {
	column, typed, err := fieldValue(field, value)
	if err != nil {
		return "", nil, err
	}

	return builder.Update(models.Recipe{}.TableName()).
		Set(column, typed).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// fieldValue maps an updatable field name to its column and checks the value
// type.
func fieldValue(field string, value any) (string, any, error) {
	switch field {
	case models.FieldIsFavorite:
		v, ok := value.(bool)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s expects bool, got %T", ErrInvalidFieldValue, field, value)
		}
		return "is_favorite", v, nil
	case models.FieldTitle:
		v, ok := value.(string)
		if !ok || v == "" {
			return "", nil, fmt.Errorf("%w: %s expects non-empty string", ErrInvalidFieldValue, field)
		}
		return "title", v, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}
