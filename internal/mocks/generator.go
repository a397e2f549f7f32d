package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
)

// SampleContent is a well-formed completion holding two flashcards.
const SampleContent = "Flashcard 1:\n**Question:** What is a goroutine?\n**Answer:** A lightweight thread managed by the Go runtime.\n" +
	"Flashcard 2:\n**Question:** What does a channel do?\n**Answer:** It passes values between goroutines."

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)

	// Default response values
	Result *domain.GenerationResult
	Err    error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains all requests passed to Generate calls
		Requests []domain.GenerationRequest

		// Contexts contains all contexts passed to Generate calls
		Contexts []context.Context
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.Contexts = append(m.GenerateCalls.Contexts, ctx)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return nil, nil
	}
	// Copy so callers may mutate the result.
	result := *m.Result
	return &result, nil
}

// CallCount returns how many times Generate was called
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastRequest returns the most recent request, or false if there was none
func (m *MockGenerator) LastRequest() (domain.GenerationRequest, bool) {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Requests) == 0 {
		return domain.GenerationRequest{}, false
	}
	return m.GenerateCalls.Requests[len(m.GenerateCalls.Requests)-1], true
}

// NewMockGeneratorWithContent creates a MockGenerator that returns content
func NewMockGeneratorWithContent(content string) *MockGenerator {
	return &MockGenerator{
		Result: &domain.GenerationResult{
			Content:  content,
			Model:    generation.DefaultModel,
			Provider: domain.ProviderOpenRouter,
			Usage:    domain.Usage{PromptTokens: 50, CompletionTokens: 40, TotalTokens: 90},
		},
	}
}

// NewMockGeneratorWithDefaultContent creates a MockGenerator returning SampleContent
func NewMockGeneratorWithDefaultContent() *MockGenerator {
	return NewMockGeneratorWithContent(SampleContent)
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// NewMockGeneratorWithKind creates a MockGenerator failing with a RelayError of kind
func NewMockGeneratorWithKind(kind generation.Kind, statusCode int) *MockGenerator {
	return NewMockGeneratorWithError(
		generation.NewRelayError(kind, domain.ProviderOpenRouter, statusCode, errUpstream),
	)
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
	m.GenerateCalls.Contexts = nil
}
