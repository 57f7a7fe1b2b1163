package score

import (
	"time"

	"github.com/google/uuid"
)

const DefaultUsername = "Anonymous"

type ScoreRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:text;not null;index" json:"username"`
	Score     int       `gorm:"not null;index" json:"score"`
	Badge     Badge     `gorm:"type:text;not null" json:"badge"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ScoreRecord) TableName() string {
	return "user_scores"
}
