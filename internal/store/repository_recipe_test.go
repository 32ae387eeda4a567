package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/models"
)

func newTestRecipeRepo(t *testing.T) (RecipeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewRecipeRepository(newDBFromSQL(db), logger.Nop()), mock
}

func sampleRecipe() models.Recipe {
	return models.Recipe{ID: "r-1", UserID: 42, Title: "Soup", Content: "# Soup", Timestamp: 1000}
}

// ── Upsert ────────────────────────────────────────────────────────────────────

func TestRecipeRepository_Upsert_Success(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	r := sampleRecipe()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes")).
		WithArgs(r.ID, r.UserID, r.Title, r.Content, r.Timestamp, r.IsFavorite).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(testContext(), r))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRecipeRepository_Upsert_ForeignID verifies that an id owned by another
// user results in ErrRecipeNotFound instead of an overwrite.
func TestRecipeRepository_Upsert_ForeignID(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Upsert(testContext(), sampleRecipe()), ErrRecipeNotFound)
}

func TestRecipeRepository_Upsert_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(testContext(), sampleRecipe()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Upsert_NonRetryableFailsOnce(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO recipes")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.Upsert(testContext(), sampleRecipe())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListByUser ────────────────────────────────────────────────────────────────

func TestRecipeRepository_ListByUser(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	rows := sqlmock.NewRows(recipeColumns).
		AddRow("r-2", int64(42), "Cake", "# Cake", int64(2000), true).
		AddRow("r-1", int64(42), "Soup", "# Soup", int64(1000), false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, content, timestamp, is_favorite FROM recipes WHERE user_id = $1 ORDER BY timestamp DESC")).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	recipes, err := repo.ListByUser(testContext(), 42)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "r-2", recipes[0].ID)
	assert.True(t, recipes[0].IsFavorite)
	assert.Equal(t, int64(1000), recipes[1].Timestamp)
}

func TestRecipeRepository_ListByUser_Empty(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	recipes, err := repo.ListByUser(testContext(), 42)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_ListByUser_ScanError(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-1"))

	_, err := repo.ListByUser(testContext(), 42)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestRecipeRepository_Delete(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE id = $1 AND user_id = $2")).
		WithArgs("r-1", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(testContext(), 42, "r-1"))
}

func TestRecipeRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(testContext(), 42, "r-1"), ErrRecipeNotFound)
}

func TestRecipeRepository_Delete_DBError(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes")).
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.Delete(testContext(), 42, "r-1"), ErrExecutingQuery)
}

// ── SetField ──────────────────────────────────────────────────────────────────

func TestRecipeRepository_SetField(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes SET is_favorite = $1 WHERE id = $2 AND user_id = $3")).
		WithArgs(true, "r-1", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetField(testContext(), 42, "r-1", models.FieldIsFavorite, true))
}

func TestRecipeRepository_SetField_UnknownFieldSkipsDB(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	err := repo.SetField(testContext(), 42, "r-1", "user_id", int64(1))
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_SetField_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetField(testContext(), 42, "r-1", models.FieldTitle, "x"), ErrRecipeNotFound)
}
