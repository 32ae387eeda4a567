// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/utils"
	"github.com/MKhiriev/vibechef/models"
)

const pathGenerate = "/api/generate"

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Images  []string        `json:"images,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ollamaGenerator calls an Ollama-compatible /api/generate endpoint.
type ollamaGenerator struct {
	client      *utils.HTTPClient
	limiter     *rate.Limiter
	model       string
	temperature float64
	timeout     time.Duration

	logger *logger.Logger
}

// NewGenerator builds a Generator for cfg. Zero values of Timeout and
// RequestsPerMinute fall back to the config defaults. Temperature is used
// as given; 0 asks the model for deterministic output.
func NewGenerator(cfg config.ClientGeneration, logger *logger.Logger) Generator {
	client := utils.NewHTTPClient(cfg.URL, 0)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultGenerationTimeout
	}
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = config.DefaultRequestsPerMinute
	}

	return &ollamaGenerator{
		client:      client,
		limiter:     rate.NewLimiter(rate.Limit(perMinute)/60, perMinute),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

// Generate asks the model for a markdown recipe. The whole call, including
// waiting for the rate limiter, is bounded by the configured timeout.
func (g *ollamaGenerator) Generate(ctx context.Context, request models.GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	log := g.logger.With().Str("func", "ollamaGenerator.Generate").Logger()

	if err := g.limiter.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("rate limiter refused the request")
		return "", g.limiterFailure(ctx, err)
	}

	body := generateRequest{
		Model:   g.model,
		Prompt:  BuildPrompt(request),
		Images:  encodeImages(request.Images),
		Stream:  false,
		Options: generateOptions{Temperature: g.temperature},
	}

	started := time.Now()
	var result generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(pathGenerate)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("generation request failed")
		return "", g.failure(ctx, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("generation endpoint answered with error")
		return "", fmt.Errorf("%w: http %d: %s", ErrGenerationFailed, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	text := strings.TrimSpace(result.Response)
	if text == "" {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, ErrEmptyResponse)
	}

	log.Debug().Dur("elapsed", time.Since(started)).Int("images", len(request.Images)).Msg("recipe generated")
	return text, nil
}

func (g *ollamaGenerator) failure(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrGenerationTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}

// limiterFailure classifies a rate limiter error. Wait refuses up front when
// the next token would arrive after the deadline, before ctx itself expires,
// so anything short of an explicit cancellation counts as a timeout.
func (g *ollamaGenerator) limiterFailure(ctx context.Context, err error) error {
	err = fmt.Errorf("rate limiter: %w", err)
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return fmt.Errorf("%w: %w", ErrGenerationTimeout, err)
}

func encodeImages(images [][]byte) []string {
	if len(images) == 0 {
		return nil
	}

	encoded := make([]string, 0, len(images))
	for _, image := range images {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(image))
	}
	return encoded
}

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(request models.GenerationRequest) string {
	var b strings.Builder

	if len(request.Images) > 0 {
		fmt.Fprintf(&b, "Look carefully at the attached photos and identify every visible ingredient. "+
			"Combine them with this list provided by the user: %s.\n", request.Ingredients)
	} else {
		fmt.Fprintf(&b, "You are a creative chef. Write a structured recipe using these ingredients: %s.\n", request.Ingredients)
	}

	fmt.Fprintf(&b, "Meal vibe: %s\n", request.Vibe)

	restrictions := "none"
	if len(request.Filters) > 0 {
		restrictions = strings.Join(request.Filters, ", ")
	}
	fmt.Fprintf(&b, "Restrictions: %s\n", restrictions)

	if rules := constraintRules(request.Filters); len(rules) > 0 {
		b.WriteString("\nApply these rules for the requested restrictions:\n")
		for _, rule := range rules {
			b.WriteString("- ")
			b.WriteString(rule)
			b.WriteByte('\n')
		}
	}

	b.WriteString(`
Expected output format (Markdown):
# [A creative, fun recipe name]

### 🍽️ Ingredients
- Ingredients with estimated quantities (adapted to the restrictions)

### 🔥 Instructions
1. Clear, concise numbered steps

If an ingredient conflicts with an active restriction, add a **Note:** line before the Ingredients section suggesting a substitute.
Do not add any other section (no introduction, no conclusion).
`)

	return b.String()
}

func constraintRules(filters []string) []string {
	var rules []string
	for _, filter := range filters {
		switch filter {
		case models.FilterVegetarian:
			rules = append(rules, `"vegetarian" => no meat or fish`)
		case models.FilterGlutenFree:
			rules = append(rules, `"gluten-free" => avoid wheat, rye and barley; suggest alternatives such as rice, corn or certified oats`)
		case models.FilterSpicy:
			rules = append(rules, `"spicy" => add moderate heat (chili, smoked paprika, Espelette pepper) without hiding the other flavours`)
		}
	}
	return rules
}
