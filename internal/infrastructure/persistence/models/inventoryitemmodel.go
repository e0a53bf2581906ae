package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

type InventoryItemModel struct {
	ID              string  `gorm:"primaryKey;size:36"`
	Name            string  `gorm:"size:150;not null;index"`
	Type            string  `gorm:"size:50;not null"`
	Model           *string `gorm:"size:100"`
	SerialNumber    *string `gorm:"size:100"`
	PurchaseDate    *time.Time
	WarrantyEndDate *time.Time
	Status          string  `gorm:"size:20;not null"`
	AssignedTo      *string `gorm:"size:36;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Client *ClientModel `gorm:"foreignKey:AssignedTo"`
}

func (InventoryItemModel) TableName() string {
	return constants.TableInventory
}
