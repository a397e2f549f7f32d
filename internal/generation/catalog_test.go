package generation

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("routes models to their provider", func(t *testing.T) {
		t.Parallel()
		catalog, err := NewCatalog(DefaultModel, domain.ProviderOpenRouter, domain.ProviderOpenAI, domain.ProviderGemini)
		require.NoError(t, err)

		provider, ok := catalog.Provider("gpt-4")
		require.True(t, ok)
		assert.Equal(t, domain.ProviderOpenAI, provider)

		provider, ok = catalog.Provider("gemini-2.0-flash")
		require.True(t, ok)
		assert.Equal(t, domain.ProviderGemini, provider)

		provider, ok = catalog.Provider(DefaultModel)
		require.True(t, ok)
		assert.Equal(t, domain.ProviderOpenRouter, provider)
	})

	t.Run("disabled provider models are not allowed", func(t *testing.T) {
		t.Parallel()
		catalog, err := NewCatalog(DefaultModel, domain.ProviderOpenRouter)
		require.NoError(t, err)

		_, ok := catalog.Provider("gpt-4")
		assert.False(t, ok)
		assert.Equal(t, DefaultModel, catalog.Resolve("gpt-4"))
		assert.Equal(t, "google/gemma-2-9b-it", catalog.Resolve("google/gemma-2-9b-it"))
	})

	t.Run("default model must be served", func(t *testing.T) {
		t.Parallel()
		_, err := NewCatalog("gpt-4", domain.ProviderOpenRouter)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		_, err := NewCatalog(DefaultModel, domain.ProviderOpenRouter, domain.Provider("acme"))
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("models are sorted", func(t *testing.T) {
		t.Parallel()
		catalog, err := NewCatalog(DefaultModel, domain.ProviderOpenRouter)
		require.NoError(t, err)
		assert.IsNonDecreasing(t, catalog.Models())
		assert.Len(t, catalog.Models(), 5)
	})
}
