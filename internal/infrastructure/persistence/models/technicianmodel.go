package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

type TechnicianModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Name      string  `gorm:"size:150;not null"`
	Phone     string  `gorm:"size:30;not null"`
	Email     *string `gorm:"size:150"`
	Status    string  `gorm:"size:20;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TechnicianModel) TableName() string {
	return constants.TableTechnicians
}
