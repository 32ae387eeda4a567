package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/vibechef/models"
)

// Struct field names usable for field-scoped validation.
const (
	FieldTitle       = "Title"
	FieldContent     = "Content"
	FieldTimestamp   = "Timestamp"
	FieldLogin       = "Login"
	FieldPassword    = "Password"
	FieldIngredients = "Ingredients"
)

// StructValidator validates the models that cross a trust boundary: recipes
// written by clients, credentials, partial updates and generation requests.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a validator that reports fields by their JSON
// names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate accepts values and pointers of models.Recipe, models.User,
// models.SetFieldRequest and models.GenerationRequest. Other types return
// ErrUnsupportedType.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe, *models.Recipe,
		models.User, *models.User,
		models.SetFieldRequest, *models.SetFieldRequest,
		models.GenerationRequest, *models.GenerationRequest:
		return s.check(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (s *StructValidator) check(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}
