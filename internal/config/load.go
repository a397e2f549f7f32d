package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when the environment leaves a key unset.
const (
	DefaultPort              = 5000
	DefaultLogLevel          = "info"
	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterReferer = "http://localhost:5000"
	DefaultModel             = "mistralai/mistral-7b-instruct"
	DefaultRequestTimeout    = 60 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.log_level":        "LOG_LEVEL",
	"server.debug":            "DEBUG",
	"server.allowed_origins":  "CORS_ALLOWED_ORIGINS",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"llm.openai_api_key":      "OPENAI_API_KEY",
	"llm.openrouter_api_key":  "OPENROUTER_API_KEY",
	"llm.gemini_api_key":      "GEMINI_API_KEY",
	"llm.openai_base_url":     "OPENAI_BASE_URL",
	"llm.openrouter_base_url": "OPENROUTER_BASE_URL",
	"llm.openrouter_referer":  "OPENROUTER_REFERER",
	"llm.default_model":       "DEFAULT_MODEL",
	"llm.request_timeout":     "UPSTREAM_TIMEOUT",
}

// Load reads configuration from environment variables.
// Values from a .env file are visible here once the caller has loaded it
// into the process environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("llm.openai_base_url", DefaultOpenAIBaseURL)
	v.SetDefault("llm.openrouter_base_url", DefaultOpenRouterBaseURL)
	v.SetDefault("llm.openrouter_referer", DefaultOpenRouterReferer)
	v.SetDefault("llm.default_model", DefaultModel)
	v.SetDefault("llm.request_timeout", DefaultRequestTimeout)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
