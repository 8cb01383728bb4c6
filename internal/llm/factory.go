package llm

import (
	"context"
	"fmt"

	"github.com/schoolofai/drillcore/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware chain: caller sees retry, retry sees logging, logging sees
// the backend. The mock provider skips middleware so tests observe raw
// call counts.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}
