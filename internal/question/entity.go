package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const OptionCount = 4

type Question struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Text         string                      `gorm:"type:text;not null" json:"text"`
	Options      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectIndex int                         `gorm:"not null" json:"correct_index"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
