package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidID = errors.New("invalid question id")

type QuestionService interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	AddQuestion(ctx context.Context, dto CreateQuestionDTO) ([]*Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo QuestionRepository
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) ListQuestions(ctx context.Context) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *questionService) AddQuestion(ctx context.Context, dto CreateQuestionDTO) ([]*Question, error) {
	log := config.WithContext(ctx)

	q := dto.toEntity()
	q.ID = uuid.New()

	rows := []*Question{q}
	if err := s.repo.Insert(ctx, rows); err != nil {
		log.WithError(err).Error("Failed to insert question")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}

	log.WithField("question_id", q.ID).Info("Question added")
	return rows, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	questionID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid question ID")
		return ErrInvalidID
	}

	if err := s.repo.Delete(ctx, questionID); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"question_id": questionID,
		}).Error("Failed to delete question")
		return fmt.Errorf("%w: %v", config.ErrStore, err)
	}

	log.WithField("question_id", questionID).Info("Question deleted")
	return nil
}
