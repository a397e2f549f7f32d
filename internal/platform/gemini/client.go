package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-relay/internal/config"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	"google.golang.org/genai"
)

// Client implements the generation.Completer interface using Gemini.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client
}

var _ generation.Completer = (*Client)(nil)

// NewClient creates a new Gemini completer from the LLM configuration.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration; GeminiAPIKey must be set
//
// Returns:
//   - A properly initialized Client or an error if initialization fails
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = generation.DefaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger: logger.With("provider", domain.ProviderGemini.String()),
		client: client,
	}, nil
}

// Complete makes one generateContent call for req. It never retries.
//
// Parameters:
//   - ctx: Context for the call; its deadline bounds the request
//   - req: The normalized request; Prompt is sent as the user content
//
// Returns:
//   - The generated text, model and token usage
//   - A *generation.RelayError if the call or the response is unusable
func (c *Client) Complete(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	temperature := float32(req.Temperature)
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: generation.SystemInstruction}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}

	c.logger.DebugContext(ctx, "Making Gemini API call",
		"model", req.Model,
		"prompt_length", len(req.Prompt))

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		status := statusCode(err)
		return nil, generation.NewRelayError(
			generation.Classify(status, err), domain.ProviderGemini, status,
			fmt.Errorf("gemini generate content failed: %w", err))
	}

	return parseResponse(req.Model, resp)
}

// parseResponse converts a Gemini response into a GenerationResult.
//
// Parameters:
//   - model: The requested model, reported when the response names no version
//   - resp: The response returned by GenerateContent
//
// Returns:
//   - The joined text of the first candidate and its usage
//   - A *generation.RelayError if the response was blocked or carries no text
func parseResponse(model string, resp *genai.GenerateContentResponse) (*domain.GenerationResult, error) {
	if resp == nil {
		return nil, invalidResponse("nil response")
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, generation.NewRelayError(
			generation.KindBadUpstreamRequest, domain.ProviderGemini, 0,
			fmt.Errorf("%w: prompt blocked (%s)", ErrContentBlocked, resp.PromptFeedback.BlockReason))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, invalidResponse("no candidates returned")
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, generation.NewRelayError(
			generation.KindBadUpstreamRequest, domain.ProviderGemini, 0,
			fmt.Errorf("%w: generation stopped", ErrContentBlocked))
	}

	if candidate.Content == nil {
		return nil, invalidResponse("empty content in response")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	result := &domain.GenerationResult{
		Content: text,
		Model:   model,
	}
	if resp.ModelVersion != "" {
		result.Model = resp.ModelVersion
	}
	if usage := resp.UsageMetadata; usage != nil {
		result.Usage = domain.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}

	return result, nil
}

func invalidResponse(detail string) error {
	return generation.NewRelayError(
		generation.KindInternal, domain.ProviderGemini, http.StatusOK,
		fmt.Errorf("%w: %s", generation.ErrInvalidResponse, detail))
}

// statusCode extracts the HTTP status from a genai API error, or 0 if the
// request never got a response.
func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
