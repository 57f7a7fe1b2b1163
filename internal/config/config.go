package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
)

type Config struct {
	DatabaseDSN    string
	Port           string
	APIPrefix      string
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
	AI             AIConfig
}

type AIConfig struct {
	Provider string

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string
	AppTitle          string

	OpenAIAPIKey string
	OpenAIModel  string

	GeminiAPIKey string
	GeminiModel  string

	AnthropicAPIKey string
	AnthropicModel  string
}

func Load() Config {
	return Config{
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		Port:           getenv("PORT", "3000"),
		APIPrefix:      getenv("API_PREFIX", "/api"),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
		AI: AIConfig{
			Provider:          strings.ToLower(getenv("AI_PROVIDER", ProviderOpenRouter)),
			OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
			OpenRouterModel:   getenv("OPENROUTER_MODEL", "mistral/mistral-7b-instruct"),
			OpenRouterBaseURL: getenv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			AppTitle:          getenv("OPENROUTER_APP_TITLE", "H2OWISE Water Quiz"),
			OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:       getenv("OPENAI_MODEL", "gpt-4o-mini"),
			GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
			GeminiModel:       getenv("GEMINI_MODEL", "gemini-2.0-flash"),
			AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:    getenv("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		},
	}
}

// Validate reports configuration that would make the service unusable at
// the first request rather than at startup.
func (c Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	return c.AI.Validate()
}

func (c AIConfig) Validate() error {
	switch c.Provider {
	case ProviderOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return errors.New("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return errors.New("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	default:
		return fmt.Errorf("unknown AI provider: %q", c.Provider)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
