package llm

import "testing"

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("DRILLCORE_LLM_PROVIDER", "openai")
	t.Setenv("DRILLCORE_LLM_API_KEY", "sk-test")
	t.Setenv("DRILLCORE_LLM_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %s, want openai", cfg.Provider)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %s, want sk-test", cfg.APIKey)
	}
	if cfg.ResolvedModel() != "gpt-4o" {
		t.Errorf("model = %s, want gpt-4o", cfg.ResolvedModel())
	}
}

func TestConfigFromEnv_FallsBackToBareKey(t *testing.T) {
	t.Setenv("DRILLCORE_LLM_PROVIDER", "anthropic")
	t.Setenv("DRILLCORE_LLM_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := ConfigFromEnv()
	if cfg.APIKey != "sk-ant" {
		t.Errorf("APIKey = %s, want the bare provider key", cfg.APIKey)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" || cfg.APIKey != "g-key" {
		t.Errorf("got %s/%s, want gemini/g-key", cfg.Provider, cfg.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestResolvedModel_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResolvedModel(); got != "claude-haiku" {
		t.Errorf("default anthropic model = %s, want claude-haiku", got)
	}
	cfg.Provider = "gemini"
	if got := cfg.ResolvedModel(); got != "gemini-flash" {
		t.Errorf("default gemini model = %s, want gemini-flash", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with no API key")
	}

	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	cfg.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock must not need a key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
