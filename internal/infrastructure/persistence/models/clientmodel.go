package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

type ClientModel struct {
	ID               string  `gorm:"primaryKey;size:36"`
	Name             string  `gorm:"size:150;not null;index"`
	DocumentType     string  `gorm:"size:20;not null"`
	DocumentNumber   string  `gorm:"size:30;not null"`
	Address          string  `gorm:"size:255;not null"`
	Phone            string  `gorm:"size:30;not null"`
	Email            *string `gorm:"size:150"`
	IPAddress        *string `gorm:"size:45"`
	MACAddress       *string `gorm:"column:mac_address;size:17"`
	PlanID           *string `gorm:"size:36;index"`
	Status           string  `gorm:"size:20;not null;index"`
	RegistrationDate time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Plan *PlanModel `gorm:"foreignKey:PlanID"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
