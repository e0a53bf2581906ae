package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

type NetworkDeviceModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Name      string  `gorm:"size:100;not null;index"`
	IPAddress string  `gorm:"size:45;not null"`
	Type      string  `gorm:"size:20;not null"`
	Model     *string `gorm:"size:100"`
	Location  *string `gorm:"size:255"`
	Status    string  `gorm:"size:20;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NetworkDeviceModel) TableName() string {
	return constants.TableNetworkDevices
}
