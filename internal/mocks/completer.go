package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
)

var errUpstream = errors.New("upstream said no: sk-or-secret-in-body")

// MockCompleter implements generation.Completer for testing
type MockCompleter struct {
	CompleteFn func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)

	Result *domain.GenerationResult
	Err    error

	CompleteCalls struct {
		mu       sync.Mutex
		Count    int
		Requests []domain.GenerationRequest
	}
}

var _ generation.Completer = (*MockCompleter)(nil)

// Complete implements the generation.Completer interface
func (m *MockCompleter) Complete(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	m.CompleteCalls.mu.Lock()
	m.CompleteCalls.Count++
	m.CompleteCalls.Requests = append(m.CompleteCalls.Requests, req)
	m.CompleteCalls.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, req)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return nil, nil
	}
	result := *m.Result
	return &result, nil
}

// CallCount returns how many times Complete was called
func (m *MockCompleter) CallCount() int {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	return m.CompleteCalls.Count
}

// NewMockCompleterWithContent creates a MockCompleter returning content for model
func NewMockCompleterWithContent(model, content string) *MockCompleter {
	return &MockCompleter{
		Result: &domain.GenerationResult{
			Content: content,
			Model:   model,
			Usage:   domain.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		},
	}
}
