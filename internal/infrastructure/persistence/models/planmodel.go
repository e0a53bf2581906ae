package models

import (
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/shared/constants"
)

// PlanModel represents the database persistence model for service plans
// This is the anti-corruption layer between domain and database
type PlanModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	Name          string          `gorm:"size:100;not null;index"`
	DownloadSpeed int             `gorm:"not null"`
	UploadSpeed   int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
