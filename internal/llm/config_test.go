package llm

import "testing"

func TestConfigFromEnvAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "k-original")
	t.Setenv("SKILLBRIDGE_LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "k-original" {
		t.Errorf("API_KEY not picked up: %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != DefaultGeminiModel {
		t.Errorf("expected default model %q, got %q", DefaultGeminiModel, cfg.Gemini.Model)
	}
}

func TestConfigFromEnvAbsentKeyStaysEmpty(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("SKILLBRIDGE_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := ConfigFromEnv()
	// The empty key is passed through; auth rejection happens remotely.
	if cfg.Gemini.APIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.Gemini.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty key must not fail validation: %v", err)
	}
}

func TestConfigFromEnvProviderFallback(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("SKILLBRIDGE_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "k-openai")
	t.Setenv("SKILLBRIDGE_LLM_PROVIDER", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected openai fallback, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "k-openai" {
		t.Errorf("OPENAI_API_KEY not picked up: %q", cfg.OpenAI.APIKey)
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bard"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
