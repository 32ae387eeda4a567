// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SetFieldRequest is a partial update of a single recipe field.
// Value is decoded according to Field: a bool for is_favorite, a string for
// title.
type SetFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=is_favorite title"`
	Value any    `json:"value"`
}

// UpsertResponse is returned after a recipe was stored remotely.
type UpsertResponse struct {
	ID string `json:"id"`
}

// RecipesResponse is the body of the recipe list endpoint.
type RecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
	Length  int      `json:"length"`
}
