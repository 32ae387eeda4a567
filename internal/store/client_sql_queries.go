// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/vibechef/models"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildReplaceRecipeQuery writes the row with REPLACE semantics: an existing
// row with the same id is overwritten.
func buildReplaceRecipeQuery(recipe models.Recipe) (string, []any, error) {
	return sqlite.Replace(models.Recipe{}.TableName()).
		Columns(recipeColumns...).
		Values(recipe.ID, recipe.UserID, recipe.Title, recipe.Content, recipe.Timestamp, recipe.IsFavorite).
		ToSql()
}

func buildLocalListRecipesQuery(userID int64) (string, []any, error) {
	return sqlite.Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC").
		ToSql()
}

func buildLocalDeleteRecipeQuery(userID int64, id string) (string, []any, error) {
	return sqlite.Delete(models.Recipe{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildLocalDeleteAllQuery(userID int64) (string, []any, error) {
	return sqlite.Delete(models.Recipe{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

const (
	getSetting = `SELECT value FROM settings WHERE key = ?;`
	setSetting = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	deleteSetting = `DELETE FROM settings WHERE key = ?;`
)
