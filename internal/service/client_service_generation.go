package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/validators"
	"github.com/MKhiriev/vibechef/models"
)

type generationService struct {
	generator Generator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewGenerationService(generator Generator, validator validators.Validator, logger *logger.Logger) GenerationService {
	return &generationService{
		generator: generator,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *generationService) Run(ctx context.Context, request models.GenerationRequest) models.GenerationState {
	if strings.TrimSpace(request.Ingredients) == "" && len(request.Images) == 0 {
		return models.GenerationError{Message: app.MsgEmptyIngredients}
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.GenerationError{Message: err.Error()}
	}

	s.logger.Debug().
		Str("vibe", request.Vibe).
		Strs("filters", request.Filters).
		Int("images", len(request.Images)).
		Msg("generating recipe")

	content, err := s.generator.Generate(ctx, request)
	switch {
	case errors.Is(err, ErrGenerationTimeout):
		s.logger.Warn().Err(err).Msg("recipe generation timed out")
		return models.GenerationError{Message: app.MsgGenerationTimeout}
	case errors.Is(err, ErrEmptyResponse):
		s.logger.Warn().Err(err).Msg("model returned no text")
		return models.GenerationError{Message: app.MsgGenerationFailed}
	case err != nil:
		s.logger.Error().Err(err).Msg("recipe generation failed")
		return models.GenerationError{Message: err.Error()}
	}

	return models.GenerationSuccess{Recipe: ComposeRecipe(content, s.now())}
}

// ComposeRecipe builds an unsaved recipe from generated markdown. The title
// is the first "# " heading, or models.DefaultRecipeTitle when there is none.
func ComposeRecipe(content string, now time.Time) models.Recipe {
	title := models.DefaultRecipeTitle
	for _, line := range strings.Split(content, "\n") {
		if heading, ok := strings.CutPrefix(line, "# "); ok {
			if heading = strings.TrimSpace(heading); heading != "" {
				title = heading
			}
			break
		}
	}

	return models.Recipe{
		Title:     title,
		Content:   content,
		Timestamp: now.UnixMilli(),
	}
}
