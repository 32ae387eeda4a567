// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vibechef/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecipe() models.Recipe {
	return models.Recipe{UserID: 1, Title: "Soup", Content: "# Soup\n\nBoil.", Timestamp: 1}
}

func newValidator(t *testing.T) Validator {
	t.Helper()
	v := NewStructValidator()
	require.NotNil(t, v)
	return v
}

// ---------------------------------------------------------------------------
// Recipe
// ---------------------------------------------------------------------------

func TestValidate_Recipe(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, validRecipe()))
	r := validRecipe()
	assert.NoError(t, v.Validate(ctx, &r))

	tests := []struct {
		name   string
		mutate func(r *models.Recipe)
		want   string
	}{
		{"empty title", func(r *models.Recipe) { r.Title = "" }, "title is required"},
		{"long title", func(r *models.Recipe) { r.Title = strings.Repeat("x", 257) }, "title must be at most 256"},
		{"empty content", func(r *models.Recipe) { r.Content = "" }, "content is required"},
		{"negative timestamp", func(r *models.Recipe) { r.Timestamp = -1 }, "timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_FieldScoped(t *testing.T) {
	v := newValidator(t)
	r := models.Recipe{Title: "only a title"}

	assert.NoError(t, v.Validate(context.Background(), r, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), r, FieldContent), ErrInvalidValue)
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "chef", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "ab", Password: "secret1"}), ErrInvalidValue)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "chef", Password: "123"}), ErrInvalidValue)
	assert.ErrorIs(t, v.Validate(ctx, models.User{}), ErrInvalidValue)
}

// ---------------------------------------------------------------------------
// SetFieldRequest
// ---------------------------------------------------------------------------

func TestValidate_SetFieldRequest(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SetFieldRequest{Field: models.FieldIsFavorite, Value: true}))
	assert.NoError(t, v.Validate(ctx, &models.SetFieldRequest{Field: models.FieldTitle, Value: "x"}))

	err := v.Validate(ctx, models.SetFieldRequest{Field: "user_id", Value: 2})
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "field must be one of")
}

// ---------------------------------------------------------------------------
// GenerationRequest
// ---------------------------------------------------------------------------

func TestValidate_GenerationRequest(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.GenerationRequest{Ingredients: "eggs", Filters: []string{models.FilterSpicy}}))
	assert.NoError(t, v.Validate(ctx, models.GenerationRequest{Images: [][]byte{{0xFF}}}), "images alone are enough")

	assert.ErrorIs(t, v.Validate(ctx, models.GenerationRequest{}), ErrInvalidValue)
	assert.ErrorIs(t, v.Validate(ctx, models.GenerationRequest{Ingredients: "eggs", Filters: []string{"keto"}}), ErrInvalidValue)
	assert.ErrorIs(t, v.Validate(ctx, models.GenerationRequest{
		Ingredients: "eggs",
		Images:      [][]byte{{1}, {2}, {3}, {4}, {5}},
	}), ErrInvalidValue)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	v := newValidator(t)

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Token{}), ErrUnsupportedType)
}
