package models

import (
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/shared/constants"
)

type InvoiceModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	InvoiceNumber string          `gorm:"uniqueIndex;size:20;not null"`
	ClientID      string          `gorm:"size:36;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        string          `gorm:"size:20;not null"`
	DueDate       time.Time       `gorm:"not null"`
	PaymentDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}
