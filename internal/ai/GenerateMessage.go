package ai

import (
	"context"
	"strings"
	"time"

	"card_words_ai/internal/ai/prompts"
	"card_words_ai/internal/utils"
	apperrors "card_words_ai/pkg/errors"
	"card_words_ai/pkg/logger"
	"card_words_ai/pkg/metrics"
	"card_words_ai/pkg/tracer"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// GenerateMessage relays one prompt to the chat completion endpoint and
// returns the first choice's text unchanged.
//
// Errors are *apperrors.AppError: ErrAPIKeyMissing when no credential is set
// (no upstream call is made), ErrGenerationFailed for everything else with
// the cause attached for logging.
func (g *Generator) GenerateMessage(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "ai.GenerateMessage")
	defer span.End()

	var apiKey string
	if g.apiKey != nil {
		apiKey = g.apiKey()
	}
	if apiKey == "" {
		metrics.GenerationTotal.WithLabelValues("missing_credential").Inc()
		span.SetStatus(codes.Error, "api key missing")
		logger.Warn(ctx, "generation rejected: api key is not configured")
		return "", apperrors.ErrAPIKeyMissing
	}

	span.SetAttributes(
		attribute.String("llm.model", g.model),
		attribute.String("card.instruction_version", prompts.CardInstructionVersion),
	)

	start := time.Now()
	text, err := g.client.Complete(ctx, ChatRequest{
		APIKey:      apiKey,
		Model:       g.model,
		System:      g.systemPrompt,
		User:        prompt,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		TopP:        TopP,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		class := utils.ClassifyError(err)
		metrics.GenerationTotal.WithLabelValues("failed").Inc()
		metrics.LLMErrorsTotal.WithLabelValues(class).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, class)
		logger.Error(ctx, "chat completion failed", err, "class", class, "model", g.model)
		return "", apperrors.ErrGenerationFailed.WithError(err)
	}

	metrics.GenerationTotal.WithLabelValues("success").Inc()
	metrics.MessageWordCount.Observe(float64(len(strings.Fields(text))))
	logger.Info(ctx, "card message generated", "model", g.model, "duration_ms", time.Since(start).Milliseconds())

	return text, nil
}
