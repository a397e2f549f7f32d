package generation

import (
	"fmt"
	"slices"

	"github.com/phrazzld/scry-relay/internal/domain"
)

// DefaultModel is used when a request names no model or an unknown one.
const DefaultModel = "mistralai/mistral-7b-instruct"

// Models offered per provider. A provider's models are only allowed when
// that provider is enabled.
var providerModels = map[domain.Provider][]string{
	domain.ProviderOpenRouter: {
		"mistralai/mistral-7b-instruct",
		"meta-llama/llama-3.1-8b-instruct",
		"google/gemma-2-9b-it",
		"anthropic/claude-3-haiku",
		"openai/gpt-4o-mini",
	},
	domain.ProviderOpenAI: {
		"gpt-3.5-turbo",
		"gpt-4",
		"gpt-4o",
		"gpt-4o-mini",
	},
	domain.ProviderGemini: {
		"gemini-1.5-flash",
		"gemini-2.0-flash",
	},
}

// Catalog is the model allow-list. It maps every allowed model to the
// provider that serves it.
type Catalog struct {
	models       map[string]domain.Provider
	defaultModel string
}

// NewCatalog creates a catalog of the built-in models for the enabled
// providers. The default model must belong to one of them.
func NewCatalog(defaultModel string, enabled ...domain.Provider) (*Catalog, error) {
	models := make(map[string]domain.Provider)
	for _, provider := range enabled {
		list, ok := providerModels[provider]
		if !ok {
			return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, provider)
		}
		for _, model := range list {
			models[model] = provider
		}
	}

	if _, ok := models[defaultModel]; !ok {
		return nil, fmt.Errorf("%w: default model %q is not served by an enabled provider",
			ErrInvalidConfig, defaultModel)
	}

	return &Catalog{models: models, defaultModel: defaultModel}, nil
}

// Resolve returns model if it is allowed, otherwise the default model.
func (c *Catalog) Resolve(model string) string {
	if _, ok := c.models[model]; ok {
		return model
	}
	return c.defaultModel
}

// Provider returns the provider serving model.
func (c *Catalog) Provider(model string) (domain.Provider, bool) {
	provider, ok := c.models[model]
	return provider, ok
}

// DefaultModel returns the fallback model.
func (c *Catalog) DefaultModel() string {
	return c.defaultModel
}

// Models returns the allowed model names in sorted order.
func (c *Catalog) Models() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
