package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM backend. A single flat key/model
// pair covers every provider; OpenAI-compatible gateways are reached by
// setting BaseURL with the "openai" provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	APIKey string

	// Model is a friendly alias or a raw provider model ID. Empty picks
	// the provider default.
	Model string

	// BaseURL overrides the OpenAI endpoint for compatible APIs.
	BaseURL string

	Retry RetryConfig

	// Timeout bounds one request including retries. Default 30s.
	Timeout time.Duration
}

// RetryConfig tunes the transient-failure retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// defaultModels are the per-provider defaults used when Model is unset.
var defaultModels = map[string]string{
	"anthropic": "claude-haiku",
	"openai":    "gpt-4o-mini",
	"gemini":    "gemini-flash",
	"mock":      "mock",
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads DRILLCORE_LLM_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DRILLCORE_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("DRILLCORE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("DRILLCORE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DRILLCORE_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	if cfg.APIKey == "" {
		cfg.APIKey = bareKeyFor(cfg.Provider)
	}

	return cfg
}

// DiscoverConfig probes the usual bare API key variables when nothing
// drillcore-specific is set, in priority order Gemini, OpenAI,
// Anthropic. The second return is false when no key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, provider := range []string{"gemini", "openai", "anthropic"} {
		if key := bareKeyFor(provider); key != "" {
			cfg.Provider = provider
			cfg.APIKey = key
			return cfg, true
		}
	}
	return Config{}, false
}

func bareKeyFor(provider string) string {
	switch provider {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

// ResolvedModel returns the model to use, applying the provider default.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider (set DRILLCORE_LLM_API_KEY)", c.Provider)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
