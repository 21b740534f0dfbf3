package llm

import (
	"fmt"
	"os"
	"time"
)

// DefaultGeminiModel is the fixed chat model. It matches the hosted
// endpoint the product was built against.
const DefaultGeminiModel = "gemini-3-pro-preview"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig

	// Timeout is the maximum duration for a single LLM request.
	// Default: 60s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	// APIKey may be empty: it is passed through as-is and the remote
	// rejects the request with an auth error, which callers convert into
	// their fallback behavior.
	APIKey string
	Model  string // Default: DefaultGeminiModel
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
//
// API_KEY is the single variable the original product recognizes; it carries
// the Gemini credential. The SKILLBRIDGE_* overrides and the standard
// provider key variables are honored on top of it.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}

	if p := os.Getenv("SKILLBRIDGE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("SKILLBRIDGE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SKILLBRIDGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("SKILLBRIDGE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SKILLBRIDGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SKILLBRIDGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("SKILLBRIDGE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SKILLBRIDGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	// Standard provider key probes, lowest priority. The first one found
	// switches the provider only when the Gemini credential is absent.
	if cfg.Gemini.APIKey == "" {
		if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			cfg.Gemini.APIKey = k
		} else if k := os.Getenv("OPENAI_API_KEY"); k != "" && cfg.OpenAI.APIKey == "" {
			cfg.Provider = "openai"
			cfg.OpenAI.APIKey = k
		} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" && cfg.Anthropic.APIKey == "" {
			cfg.Provider = "anthropic"
			cfg.Anthropic.APIKey = k
		}
	}

	return cfg
}

// Validate checks that the selected provider name is known. A missing API
// key is deliberately not an error here: the key is passed through empty and
// the resulting auth rejection becomes the standard in-channel fallback.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini", "openai", "anthropic", "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
