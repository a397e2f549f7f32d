package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Debug forces debug logging.
	Debug bool `mapstructure:"debug"`
	// AllowedOrigins lists the CORS origins; "*" allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
	// ShutdownTimeout bounds the graceful shutdown drain.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	OpenAIAPIKey     string `mapstructure:"openai_api_key" validate:"required"`
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key" validate:"required"`
	// GeminiAPIKey is optional. Gemini models are only offered when it is set.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	OpenAIBaseURL     string `mapstructure:"openai_base_url" validate:"required,url"`
	OpenRouterBaseURL string `mapstructure:"openrouter_base_url" validate:"required,url"`
	// OpenRouterReferer is sent as the HTTP-Referer header OpenRouter uses
	// for app attribution.
	OpenRouterReferer string `mapstructure:"openrouter_referer" validate:"omitempty,url"`

	DefaultModel   string        `mapstructure:"default_model" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// GeminiEnabled reports whether a Gemini key is configured.
func (c LLMConfig) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}
