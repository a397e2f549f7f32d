package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-relay/internal/config"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	"github.com/phrazzld/scry-relay/internal/platform/gemini"
	"github.com/phrazzld/scry-relay/internal/platform/metrics"
	"github.com/phrazzld/scry-relay/internal/platform/openai"
	"github.com/phrazzld/scry-relay/internal/platform/openrouter"
	"github.com/phrazzld/scry-relay/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics          *metrics.Recorder
	flashcardService service.FlashcardService
}

// newApplication creates a new application instance with all dependencies
// initialized: one client per enabled provider, the relay routing between
// them, and the flashcard service on top.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.NewRecorder(),
	}

	providers, err := newProviders(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	enabled := make([]domain.Provider, 0, len(providers))
	for provider := range providers {
		enabled = append(enabled, provider)
	}

	catalog, err := generation.NewCatalog(cfg.LLM.DefaultModel, enabled...)
	if err != nil {
		return nil, fmt.Errorf("failed to build model catalog: %w", err)
	}

	relay, err := generation.NewRelay(catalog, providers, logger,
		generation.WithTimeout(cfg.LLM.RequestTimeout),
		generation.WithObserver(app.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create relay: %w", err)
	}

	app.flashcardService, err = service.NewFlashcardService(
		generation.NewNormalizer(catalog), relay, logger, app.metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"providers", len(providers),
		"models", len(catalog.Models()))
	return app, nil
}

// newProviders creates the upstream clients. Gemini is only created when a
// key is configured.
func newProviders(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (map[domain.Provider]generation.Completer, error) {
	providers := make(map[domain.Provider]generation.Completer, 3)

	openRouterClient, err := openrouter.NewClient(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenRouter client: %w", err)
	}
	providers[domain.ProviderOpenRouter] = openRouterClient

	openAIClient, err := openai.NewClient(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	providers[domain.ProviderOpenAI] = openAIClient

	if cfg.GeminiEnabled() {
		geminiClient, err := gemini.NewClient(ctx, logger, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		providers[domain.ProviderGemini] = geminiClient
	} else {
		logger.Info("Gemini disabled, no API key configured")
	}

	return providers, nil
}

// Run starts the HTTP server and blocks until ctx is canceled and the
// server has drained.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
