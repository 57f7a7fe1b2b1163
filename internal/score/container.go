package score

import (
	"github.com/saulo-duarte/h2owise/internal/question"
	"gorm.io/gorm"
)

type ScoreContainer struct {
	Handler *Handler
}

func NewScoreContainer(db *gorm.DB, questionRepo question.QuestionRepository) *ScoreContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo)
	handler := NewHandler(service)

	return &ScoreContainer{
		Handler: handler,
	}
}
