package generation

import (
	"context"

	"github.com/phrazzld/scry-relay/internal/domain"
)

// Completer performs one chat completion against a single upstream provider.
// This interface is the boundary between the relay and the external LLM APIs.
type Completer interface {
	// Complete sends the system instruction and req.Prompt as a two-message
	// exchange and returns the generated text. Failures are returned as
	// *RelayError so the caller can map them without inspecting provider
	// details.
	Complete(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// Generator produces raw generated text for a validated request.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}
