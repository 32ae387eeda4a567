package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/internal/validators"
	"github.com/MKhiriev/vibechef/models"
)

// RecipeValidationService rejects malformed input before it reaches the
// wrapped RecipeService.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService(validator validators.Validator) RecipeServiceWrapper {
	return &RecipeValidationService{validator: validator}
}

func (v *RecipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

func (v *RecipeValidationService) Save(ctx context.Context, userID int64, recipe models.Recipe) (string, error) {
	if userID <= 0 {
		return "", ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Save(ctx, userID, recipe)
}

func (v *RecipeValidationService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	return v.inner.List(ctx, userID)
}

func (v *RecipeValidationService) Delete(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if id == "" {
		return ErrEmptyRecipeID
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *RecipeValidationService) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if id == "" {
		return ErrEmptyRecipeID
	}
	if field != models.FieldIsFavorite && field != models.FieldTitle {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, store.ErrUnknownField, field)
	}
	if err := v.validator.Validate(ctx, models.SetFieldRequest{Field: field, Value: value}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetField(ctx, userID, id, field, value)
}

func (v *RecipeValidationService) Watch(ctx context.Context, userID int64) <-chan models.HistorySnapshot {
	return v.inner.Watch(ctx, userID)
}
