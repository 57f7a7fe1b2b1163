package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/h2owise/internal/config"
)

// Provider sends a single user-role prompt to a chat completion API and
// returns the raw text of the first answer.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelID() string
}

func NewProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.OpenRouterBaseURL, cfg.AppTitle), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, ""), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderAnthropic:
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
}
