package openrouter

import (
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
)

// chatRequest is the OpenAI-compatible request body.
type chatRequest struct {
	Model       string               `json:"model"`
	Messages    []generation.Message `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

type chatChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// chatResponse is the subset of the completion payload the relay reads.
// OpenRouter may report a provider failure inside a 200 response, hence Error.
type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   domain.Usage `json:"usage"`
	Error   *apiError    `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// errorResponse is the body of a non-2xx reply.
type errorResponse struct {
	Error apiError `json:"error"`
}
