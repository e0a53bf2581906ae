package models

import (
	"time"

	"ispdesk/internal/shared/constants"
)

type TicketModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	TicketNumber string  `gorm:"uniqueIndex;size:20;not null"`
	ClientID     string  `gorm:"size:36;not null"`
	TechnicianID *string `gorm:"size:36"`
	Title        string  `gorm:"size:200;not null"`
	Description  string  `gorm:"type:text;not null"`
	Priority     string  `gorm:"size:20;not null"`
	Status       string  `gorm:"size:20;not null;index"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Client     *ClientModel     `gorm:"foreignKey:ClientID"`
	Technician *TechnicianModel `gorm:"foreignKey:TechnicianID"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	TicketID  string    `gorm:"size:36;not null;index"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedBy string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}
