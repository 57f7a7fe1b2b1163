package aiquiz

import (
	"context"

	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuestion(ctx context.Context, req GenerateRequest) (*GeneratedQuestion, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestion(ctx context.Context, req GenerateRequest) (*GeneratedQuestion, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"model": s.provider.ModelID(),
		"topic": req.Topic,
	})

	raw, err := s.provider.Complete(ctx, BuildPrompt(req.Topic))
	if err != nil {
		log.WithError(err).Error("AI completion failed")
		return nil, err
	}
	log.Debugf("[AIQUIZ] Raw completion:\n%s", raw)

	q, err := ParseQuestion(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Failed to parse completion")
		return nil, err
	}

	log.Info("[AIQUIZ] Question generated")
	return q, nil
}
