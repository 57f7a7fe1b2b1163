package aiquiz

import (
	"context"

	"github.com/saulo-duarte/h2owise/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, cfg config.AIConfig) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}, nil
}
