package score

import (
	"context"

	"gorm.io/gorm"
)

type ScoreRepository interface {
	Insert(ctx context.Context, record *ScoreRecord) error
	Top(ctx context.Context, limit int) ([]ScoreRecord, error)
	ListByUsername(ctx context.Context, username string) ([]ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Insert(ctx context.Context, record *ScoreRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *scoreRepository) Top(ctx context.Context, limit int) ([]ScoreRecord, error) {
	var records []ScoreRecord
	if err := r.db.WithContext(ctx).
		Order("score DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *scoreRepository) ListByUsername(ctx context.Context, username string) ([]ScoreRecord, error) {
	var records []ScoreRecord
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
