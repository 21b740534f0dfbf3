package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillbridge-ai/skillbridge/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging when an event repository is supplied. There is no retry layer:
// the chat contract is a best-effort single shot per turn.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, eventRepo, log), nil
}

// NewProviderFromEnv builds a provider from the environment configuration.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log *slog.Logger) (Provider, error) {
	return NewProvider(ctx, ConfigFromEnv(), eventRepo, log)
}
