package domain

// Provider identifies an upstream completion service.
type Provider string

// Supported upstream providers.
const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderOpenAI     Provider = "openai"
	ProviderGemini     Provider = "gemini"
)

// String returns the provider name.
func (p Provider) String() string {
	return string(p)
}

// GenerationRequest is a validated, fully defaulted request for generated text.
// It exists only for the duration of one inbound request.
type GenerationRequest struct {
	// Prompt is the final prompt sent as the user message, including the
	// count instruction.
	Prompt string `validate:"required,max=4000"`

	// Topic is the trimmed prompt as supplied by the client.
	Topic string `validate:"required"`

	// Count is the number of flashcards requested.
	Count int `validate:"min=1,max=100"`

	// Model is the upstream model name, always a catalog entry.
	Model string `validate:"required"`

	// MaxTokens bounds the completion length.
	MaxTokens int `validate:"min=1,max=4000"`

	// Temperature is the sampling temperature.
	Temperature float64 `validate:"min=0,max=2"`
}

// Usage holds token counters exactly as reported by the upstream service.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResult is the raw outcome of a successful upstream call.
type GenerationResult struct {
	// Content is the generated text, untransformed.
	Content string

	// Model is the model name reported upstream, if any.
	Model string

	// Provider is the upstream that served the request.
	Provider Provider

	Usage Usage
}
