package question

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	List(ctx context.Context) ([]Question, error)
	Insert(ctx context.Context, questions []*Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) List(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Insert(ctx context.Context, questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id).Error
}
