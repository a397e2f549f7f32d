package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/phrazzld/scry-relay/internal/config"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	openai "github.com/sashabaranov/go-openai"
)

// Client calls OpenAI chat completions.
type Client struct {
	client *openai.Client
	logger *slog.Logger
}

var _ generation.Completer = (*Client)(nil)

// NewClient creates an OpenAI client from the LLM configuration.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = generation.DefaultTimeout
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger.With("provider", domain.ProviderOpenAI.String()),
	}, nil
}

// Complete sends one chat completion request. It never retries.
func (c *Client) Complete(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: generation.SystemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: temperature(req.Temperature),
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		status := statusCode(err)
		if status == 0 && isDecodeError(err) {
			return nil, generation.NewRelayError(
				generation.KindInternal, domain.ProviderOpenAI, http.StatusOK,
				fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err))
		}
		return nil, generation.NewRelayError(
			generation.Classify(status, err), domain.ProviderOpenAI, status,
			fmt.Errorf("openai chat completion failed: %w", err))
	}

	if len(resp.Choices) == 0 {
		return nil, generation.NewRelayError(
			generation.KindInternal, domain.ProviderOpenAI, http.StatusOK,
			fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse))
	}

	c.logger.DebugContext(ctx, "openai responded",
		"finish_reason", string(resp.Choices[0].FinishReason),
		"total_tokens", resp.Usage.TotalTokens)

	model := resp.Model
	if model == "" {
		model = req.Model
	}

	return &domain.GenerationResult{
		Content: resp.Choices[0].Message.Content,
		Model:   model,
		Usage: domain.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// temperature converts to the client's float32 field. go-openai omits a
// zero temperature from the payload, so zero is sent as the smallest
// positive float32 instead.
func temperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

// statusCode extracts the upstream HTTP status from a go-openai error, or 0
// if the request never got a response.
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// isDecodeError reports whether err came from decoding a response body.
// Failure statuses arrive as typed go-openai errors, so an untyped decode
// error means a 2xx body that did not parse.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
