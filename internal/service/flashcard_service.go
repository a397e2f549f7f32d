package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/domain/extract"
	"github.com/phrazzld/scry-relay/internal/generation"
)

// Outcome labels reported to Metrics besides validation codes and relay kinds.
const (
	OutcomeSuccess  = "success"
	OutcomeInternal = "internal"
)

// FlashcardSet is the result of one successful generation.
type FlashcardSet struct {
	Flashcards []domain.Flashcard
	Content    string
	Model      string
	Provider   domain.Provider
	Usage      domain.Usage
}

// FlashcardService generates flashcards from a raw request body.
type FlashcardService interface {
	// Generate normalizes body, performs one upstream completion and parses
	// the returned text into flashcards.
	Generate(ctx context.Context, body []byte) (*FlashcardSet, error)
}

// Metrics records request outcomes.
type Metrics interface {
	ObserveRequest(outcome string)
	ObserveFlashcards(n int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRequest(string) {}
func (noopMetrics) ObserveFlashcards(int) {}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	normalizer *generation.Normalizer
	generator  generation.Generator
	metrics    Metrics
	logger     *slog.Logger
}

// NewFlashcardService creates a FlashcardService. metrics may be nil.
func NewFlashcardService(
	normalizer *generation.Normalizer,
	generator generation.Generator,
	logger *slog.Logger,
	metrics Metrics,
) (FlashcardService, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &flashcardServiceImpl{
		normalizer: normalizer,
		generator:  generator,
		metrics:    metrics,
		logger:     logger.With(slog.String("component", "flashcard_service")),
	}, nil
}

// Generate implements FlashcardService.
func (s *flashcardServiceImpl) Generate(ctx context.Context, body []byte) (*FlashcardSet, error) {
	req, err := s.normalizer.Normalize(body)
	if err != nil {
		s.metrics.ObserveRequest(outcomeOf(err))
		s.logger.DebugContext(ctx, "request rejected", "error", err)
		return nil, NewServiceError("normalize", err)
	}

	s.logger.DebugContext(ctx, "request normalized",
		"model", req.Model,
		"count", req.Count,
		"max_tokens", req.MaxTokens,
		"temperature", req.Temperature)

	result, err := s.generator.Generate(ctx, req)
	if err == nil && result == nil {
		err = ErrNilResult
	}
	if err != nil {
		s.metrics.ObserveRequest(outcomeOf(err))
		return nil, NewServiceError("generate", err)
	}

	flashcards := extract.All(result.Content)
	s.metrics.ObserveRequest(OutcomeSuccess)
	s.metrics.ObserveFlashcards(len(flashcards))

	if len(flashcards) != req.Count {
		s.logger.InfoContext(ctx, "flashcard count differs from request",
			"requested", req.Count,
			"extracted", len(flashcards))
	}

	return &FlashcardSet{
		Flashcards: flashcards,
		Content:    result.Content,
		Model:      result.Model,
		Provider:   result.Provider,
		Usage:      result.Usage,
	}, nil
}

// outcomeOf labels a failure by validation code or relay kind.
func outcomeOf(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code
	}
	var relayErr *generation.RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Kind.String()
	}
	return OutcomeInternal
}
