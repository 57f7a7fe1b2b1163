package aiquiz

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider talks to OpenAI or any compatible API when baseURL is set.
func NewOpenAIProvider(apiKey, model, baseURL string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// NewOpenRouterProvider reuses the OpenAI client; OpenRouter only needs the
// X-Title header on top of bearer auth.
func NewOpenRouterProvider(apiKey, model, baseURL, appTitle string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			headers: map[string]string{"X-Title": appTitle},
		},
	}
	return &openAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) ModelID() string {
	return p.model
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for k, v := range t.headers {
		if v != "" {
			clone.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(clone)
}
