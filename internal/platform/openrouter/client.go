package openrouter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/phrazzld/scry-relay/internal/config"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
)

const chatCompletionsPath = "/chat/completions"

// Client calls OpenRouter chat completions.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

var _ generation.Completer = (*Client)(nil)

// NewClient creates an OpenRouter client from the LLM configuration.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("%w: openrouter API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.OpenRouterBaseURL == "" {
		return nil, fmt.Errorf("%w: openrouter base URL cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = generation.DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(cfg.OpenRouterBaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.OpenRouterAPIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.OpenRouterReferer != "" {
		httpClient.SetHeader("HTTP-Referer", cfg.OpenRouterReferer)
	}

	return &Client{
		http:   httpClient,
		logger: logger.With("provider", domain.ProviderOpenRouter.String()),
	}, nil
}

// Complete sends one chat completion request. It never retries.
func (c *Client) Complete(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	body := chatRequest{
		Model:       req.Model,
		Messages:    generation.Messages(req.Prompt),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var out chatResponse
	var errBody errorResponse
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&errBody).
		Post(chatCompletionsPath)
	if err != nil {
		// resty reports an undecodable 2xx body as an error alongside the response.
		if resp != nil && resp.IsSuccess() {
			return nil, generation.NewRelayError(
				generation.KindInternal, domain.ProviderOpenRouter, resp.StatusCode(),
				fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err))
		}
		return nil, generation.NewRelayError(
			generation.Classify(0, err), domain.ProviderOpenRouter, 0,
			fmt.Errorf("openrouter request failed: %w", err))
	}

	status := resp.StatusCode()
	c.logger.DebugContext(ctx, "openrouter responded",
		"status_code", status,
		"elapsed_ms", time.Since(start).Milliseconds())

	if !resp.IsSuccess() {
		upstreamErr := fmt.Errorf("openrouter returned status %d: %s", status, describe(errBody.Error, resp.String()))
		return nil, generation.NewRelayError(
			generation.Classify(status, upstreamErr), domain.ProviderOpenRouter, status, upstreamErr)
	}

	if out.Error != nil {
		return nil, generation.NewRelayError(
			generation.KindUpstreamError, domain.ProviderOpenRouter, status,
			fmt.Errorf("openrouter reported an error: %s", out.Error.Message))
	}
	if len(out.Choices) == 0 {
		return nil, generation.NewRelayError(
			generation.KindInternal, domain.ProviderOpenRouter, status,
			fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse))
	}

	model := out.Model
	if model == "" {
		model = req.Model
	}

	return &domain.GenerationResult{
		Content: out.Choices[0].Message.Content,
		Model:   model,
		Usage:   out.Usage,
	}, nil
}

// describe prefers the structured upstream message over the raw body.
func describe(apiErr apiError, raw string) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	const maxRaw = 512
	if len(raw) > maxRaw {
		return raw[:maxRaw]
	}
	return raw
}
