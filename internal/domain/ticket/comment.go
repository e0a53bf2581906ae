package ticket

import (
	"fmt"
	"strings"
	"time"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

type Comment struct {
	id        string
	ticketID  string
	comment   string
	createdBy string
	createdAt time.Time
}

func NewComment(ticketID string, comment string, createdBy string) (*Comment, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(comment) > 5000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 5000 characters")
	}
	if strings.TrimSpace(createdBy) == "" {
		return nil, fmt.Errorf("author is required")
	}

	return &Comment{
		id:        id.New(),
		ticketID:  ticketID,
		comment:   comment,
		createdBy: strings.TrimSpace(createdBy),
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id string,
	ticketID string,
	comment string,
	createdBy string,
	createdAt time.Time,
) (*Comment, error) {
	if id == "" {
		return nil, fmt.Errorf("comment ID cannot be empty")
	}
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		comment:   comment,
		createdBy: createdBy,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) TicketID() string {
	return c.ticketID
}

func (c *Comment) Comment() string {
	return c.comment
}

func (c *Comment) CreatedBy() string {
	return c.createdBy
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
