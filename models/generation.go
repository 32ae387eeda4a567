// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dietary filters offered by the generation form.
const (
	FilterVegetarian = "vegetarian"
	FilterGlutenFree = "gluten-free"
	FilterSpicy      = "spicy"
)

// GenerationRequest carries everything the user supplied for one recipe
// generation: free-text ingredients, a mood ("vibe"), dietary filters and
// optional photos of the ingredients.
type GenerationRequest struct {
	Ingredients string   `json:"ingredients" validate:"required_without=Images,max=4000"`
	Vibe        string   `json:"vibe" validate:"max=200"`
	Filters     []string `json:"filters" validate:"dive,oneof=vegetarian gluten-free spicy"`
	Images      [][]byte `json:"-" validate:"max=4"`
}

// GenerationState is the state of the recipe generation screen.
// It is one of GenerationInitial, GenerationLoading, GenerationSuccess or
// GenerationError.
type GenerationState interface {
	generationState()
}

// GenerationInitial means nothing has been requested yet.
type GenerationInitial struct{}

// GenerationLoading means a request is in flight.
type GenerationLoading struct{}

// GenerationSuccess holds a generated, not yet saved recipe.
type GenerationSuccess struct {
	Recipe Recipe
}

// GenerationError holds a user-facing failure message.
type GenerationError struct {
	Message string
}

func (GenerationInitial) generationState() {}
func (GenerationLoading) generationState() {}
func (GenerationSuccess) generationState() {}
func (GenerationError) generationState()   {}
