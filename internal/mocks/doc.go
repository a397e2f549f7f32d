// Package mocks provides centralized mock implementations for testing.
//
// The mocks record every call so tests can assert on what reached the
// upstream boundary, and each exposes function fields for custom behavior:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
//	        return nil, context.DeadlineExceeded
//	    },
//	}
//
// When adding a new mock to this package, name the file after the interface
// being mocked and add an interface assertion next to the type.
package mocks
