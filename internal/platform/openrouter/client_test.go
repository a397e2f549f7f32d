package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/scry-relay/internal/config"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		OpenRouterAPIKey:  "sk-or-test",
		OpenRouterBaseURL: baseURL,
		OpenRouterReferer: "http://localhost:5000",
		RequestTimeout:    5 * time.Second,
	}
}

func testRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Prompt:      generation.BuildPrompt(2, "Go"),
		Topic:       "Go",
		Count:       2,
		Model:       generation.DefaultModel,
		MaxTokens:   1000,
		Temperature: 0.7,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(srv.URL+"/api/v1"))
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(nil, testConfig("http://localhost"))
	assert.Error(t, err)

	cfg := testConfig("http://localhost")
	cfg.OpenRouterAPIKey = ""
	_, err = NewClient(logger, cfg)
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))

	cfg = testConfig("")
	_, err = NewClient(logger, cfg)
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}

func TestComplete_Success(t *testing.T) {
	t.Parallel()

	var received chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:5000", r.Header.Get("HTTP-Referer"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		writeJSON(w, http.StatusOK, `{
			"id": "gen-1",
			"model": "mistralai/mistral-7b-instruct",
			"choices": [{"message": {"role": "assistant", "content": "Flashcard 1:\n**Question:** Q\n**Answer:** A"}}],
			"usage": {"prompt_tokens": 50, "completion_tokens": 12, "total_tokens": 62}
		}`)
	})

	result, err := client.Complete(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Flashcard 1:\n**Question:** Q\n**Answer:** A", result.Content)
	assert.Equal(t, generation.DefaultModel, result.Model)
	assert.Equal(t, domain.Usage{PromptTokens: 50, CompletionTokens: 12, TotalTokens: 62}, result.Usage)

	assert.Equal(t, generation.DefaultModel, received.Model)
	assert.Equal(t, 1000, received.MaxTokens)
	assert.InDelta(t, 0.7, received.Temperature, 1e-9)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, generation.RoleSystem, received.Messages[0].Role)
	assert.Equal(t, generation.SystemInstruction, received.Messages[0].Content)
	assert.Equal(t, generation.RoleUser, received.Messages[1].Role)
	assert.Equal(t, testRequest().Prompt, received.Messages[1].Content)
}

func TestComplete_ModelFallsBackToRequest(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"choices": [{"message": {"content": "text"}}]}`)
	})

	result, err := client.Complete(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, generation.DefaultModel, result.Model)
	assert.Equal(t, domain.Usage{}, result.Usage)
}

func TestComplete_StatusClassification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		status   int
		expected generation.Kind
	}{
		{"unauthorized", http.StatusUnauthorized, generation.KindUnauthorized},
		{"forbidden", http.StatusForbidden, generation.KindUnauthorized},
		{"bad request", http.StatusBadRequest, generation.KindBadUpstreamRequest},
		{"rate limited", http.StatusTooManyRequests, generation.KindRateLimited},
		{"server error", http.StatusInternalServerError, generation.KindUpstreamError},
		{"bad gateway", http.StatusBadGateway, generation.KindUpstreamError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tc.status, `{"error": {"message": "upstream detail", "type": "x"}}`)
			})

			_, err := client.Complete(context.Background(), testRequest())

			var relayErr *generation.RelayError
			require.True(t, errors.As(err, &relayErr))
			assert.Equal(t, tc.expected, relayErr.Kind)
			assert.Equal(t, tc.status, relayErr.StatusCode)
			assert.Equal(t, domain.ProviderOpenRouter, relayErr.Provider)
			assert.Contains(t, relayErr.Err.Error(), "upstream detail")
		})
	}
}

func TestComplete_InvalidPayloads(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		body     string
		expected generation.Kind
	}{
		{"no choices", `{"model": "m", "choices": []}`, generation.KindInternal},
		{"error in 200 body", `{"error": {"message": "provider down"}}`, generation.KindUpstreamError},
		{"malformed json", `{"choices": nope}`, generation.KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tc.body)
			})

			_, err := client.Complete(context.Background(), testRequest())

			assert.Equal(t, tc.expected, generation.KindOf(err))
		})
	}
}

func TestComplete_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, testRequest())

	assert.Equal(t, generation.KindTimeout, generation.KindOf(err))
}

func TestComplete_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client, err := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig(baseURL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), testRequest())

	var relayErr *generation.RelayError
	require.True(t, errors.As(err, &relayErr))
	assert.Equal(t, generation.KindUpstreamError, relayErr.Kind)
	assert.Zero(t, relayErr.StatusCode)
}
