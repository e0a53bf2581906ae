package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

// SequenceModel holds the last value handed out for a named counter.
type SequenceModel struct {
	Name      string `gorm:"primaryKey;size:50"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (SequenceModel) TableName() string {
	return constants.TableSequences
}
