// Package assistant wraps the OpenRouter generative API behind the three
// planner operations: scheduling advice, marketing copy and flyer art.
// Every failure degrades to a fixed fallback value; nothing here is ever
// surfaced as a blocking error.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openrouter "github.com/revrost/go-openrouter"

	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

const (
	adviceFallback    = "AI assistant is currently offline. Please rely on the visual schedule."
	adviceEmpty       = "Could not generate advice at this time."
	marketingFallback = "AI marketing assistant is offline."
	marketingEmpty    = "Could not generate marketing content."
)

// MarketingKind selects the marketing surface the copy is written for.
type MarketingKind string

const (
	MarketingEmail  MarketingKind = "email"
	MarketingSocial MarketingKind = "social"
	MarketingFlyer  MarketingKind = "flyer"
)

// IsValid reports whether k is one of the supported marketing kinds.
func (k MarketingKind) IsValid() bool {
	switch k {
	case MarketingEmail, MarketingSocial, MarketingFlyer:
		return true
	default:
		return false
	}
}

// completionAPI is the slice of the OpenRouter client the assistant uses.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// Assistant manages interaction with the OpenRouter API.
type Assistant struct {
	logger *slog.Logger
	cfg    *config.Config
	client completionAPI
}

// New creates an Assistant backed by the real OpenRouter client.
func New(logger *slog.Logger, cfg *config.Config) *Assistant {
	op := "assistant.New()"
	log := logger.With(slog.String("op", op))

	log.Info("creating openrouter client",
		slog.String("textModel", cfg.AI.TextModelName),
		slog.String("imgModel", cfg.AI.ImgModelName),
	)

	return newWithClient(logger, cfg, openrouter.NewClient(cfg.AI.AIApiToken))
}

func newWithClient(logger *slog.Logger, cfg *config.Config, client completionAPI) *Assistant {
	return &Assistant{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

// PlanningAdvice asks for brief advice on the drafted event given the
// rest of the schedule. On any failure it returns the offline fallback
// string instead of an error.
func (a *Assistant) PlanningAdvice(ctx context.Context, draft domain.EventDraft, existing []domain.Event) string {
	op := "assistant.PlanningAdvice()"
	log := a.logger.With(slog.String("op", op))

	text, err := a.completeText(ctx, a.cfg.AI.TextModelName, buildAdvicePrompt(draft, existing))
	if err != nil {
		log.Error("advice completion failed", sl.Err(err))
		return adviceFallback
	}
	if text == "" {
		return adviceEmpty
	}
	return text
}

// MarketingContent writes promo copy for the drafted event in the given
// kind's format. On any failure it returns the offline fallback string.
func (a *Assistant) MarketingContent(ctx context.Context, draft domain.EventDraft, kind MarketingKind) string {
	op := "assistant.MarketingContent()"
	log := a.logger.With(slog.String("op", op), slog.String("kind", string(kind)))

	text, err := a.completeText(ctx, a.cfg.AI.TextModelName, buildMarketingPrompt(draft, kind))
	if err != nil {
		log.Error("marketing completion failed", sl.Err(err))
		return marketingFallback
	}
	if text == "" {
		return marketingEmpty
	}
	return text
}

// FlyerImage asks the image model for flyer art and returns it as a
// base64 data url. An empty string means no image was produced, which
// callers treat the same as a recoverable failure.
func (a *Assistant) FlyerImage(ctx context.Context, draft domain.EventDraft) string {
	op := "assistant.FlyerImage()"
	log := a.logger.With(slog.String("op", op))

	text, err := a.completeText(ctx, a.cfg.AI.ImgModelName, buildFlyerPrompt(draft))
	if err != nil {
		log.Error("flyer completion failed", sl.Err(err))
		return ""
	}

	dataURL := extractDataURL(text)
	if dataURL == "" {
		log.Warn("image model returned no inline image")
	}
	return dataURL
}

func (a *Assistant) completeText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openrouter.ChatCompletionRequest{
			Model: model,
			Messages: []openrouter.ChatCompletionMessage{
				openrouter.UserMessage(prompt),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("AI completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty AI response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content.Text), nil
}

// extractDataURL pulls the first data:image/... url out of a model
// response, tolerating surrounding markdown or prose.
func extractDataURL(s string) string {
	start := strings.Index(s, "data:image/")
	if start == -1 {
		return ""
	}
	rest := s[start:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'', '`', ')', ']':
			return true
		}
		return false
	})
	if end == -1 {
		return rest
	}
	return rest[:end]
}

func (a *Assistant) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit AI client: %w", ctx.Err())
	default:
		return nil
	}
}
