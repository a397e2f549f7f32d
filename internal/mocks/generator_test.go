package mocks_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	"github.com/phrazzld/scry-relay/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithDefaultContent()
		req := domain.GenerationRequest{Prompt: "p", Topic: "go", Count: 2, Model: generation.DefaultModel}

		result, err := mockGen.Generate(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, mocks.SampleContent, result.Content)
		assert.Equal(t, 1, mockGen.CallCount())

		last, ok := mockGen.LastRequest()
		require.True(t, ok)
		assert.Equal(t, req, last)
	})

	t.Run("Results are copies", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithContent("text")
		first, err := mockGen.Generate(context.Background(), domain.GenerationRequest{})
		require.NoError(t, err)
		first.Content = "changed"

		second, err := mockGen.Generate(context.Background(), domain.GenerationRequest{})
		require.NoError(t, err)
		assert.Equal(t, "text", second.Content)
	})

	t.Run("Relay error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithKind(generation.KindRateLimited, http.StatusTooManyRequests)
		result, err := mockGen.Generate(context.Background(), domain.GenerationRequest{})

		assert.Nil(t, result)
		assert.Equal(t, generation.KindRateLimited, generation.KindOf(err))
	})

	t.Run("Custom function", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		mockGen := &mocks.MockGenerator{
			GenerateFn: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
				if req.Topic == "trigger error" {
					return nil, customErr
				}
				return &domain.GenerationResult{}, nil
			},
		}

		_, err := mockGen.Generate(context.Background(), domain.GenerationRequest{Topic: "trigger error"})
		assert.Equal(t, customErr, err)

		_, err = mockGen.Generate(context.Background(), domain.GenerationRequest{Topic: "normal"})
		assert.NoError(t, err)
		assert.Equal(t, 2, mockGen.CallCount())
	})

	t.Run("Reset", func(t *testing.T) {
		t.Parallel()

		mockGen := &mocks.MockGenerator{}
		_, _ = mockGen.Generate(context.Background(), domain.GenerationRequest{})
		_, _ = mockGen.Generate(context.Background(), domain.GenerationRequest{})
		assert.Equal(t, 2, mockGen.CallCount())

		mockGen.Reset()
		assert.Equal(t, 0, mockGen.CallCount())
		_, ok := mockGen.LastRequest()
		assert.False(t, ok)
	})
}
