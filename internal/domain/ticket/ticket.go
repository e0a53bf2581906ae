// Package ticket models client support tickets and their comment threads.
package ticket

import (
	"fmt"
	"strings"
	"time"

	"ispdesk/internal/domain/shared"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

type Ticket struct {
	id           string
	number       string
	clientID     string
	technicianID *string
	title        string
	description  string
	priority     vo.Priority
	status       vo.TicketStatus
	resolvedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
	client       *shared.Ref
	technician   *shared.Ref
}

// NewTicket opens a ticket for a client. technicianID may be nil.
func NewTicket(
	number string,
	clientID string,
	title string,
	description string,
	priority vo.Priority,
	technicianID *string,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(title) < 3 {
		return nil, fmt.Errorf("title must be at least 3 characters")
	}
	if len(strings.TrimSpace(description)) < 10 {
		return nil, fmt.Errorf("description must be at least 10 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Ticket{
		id:           id.New(),
		number:       number,
		clientID:     clientID,
		technicianID: technicianID,
		title:        title,
		description:  description,
		priority:     priority,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id string,
	number string,
	clientID string,
	technicianID *string,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
	client *shared.Ref,
	technician *shared.Ref,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID cannot be empty")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:           id,
		number:       number,
		clientID:     clientID,
		technicianID: technicianID,
		title:        title,
		description:  description,
		priority:     priority,
		status:       status,
		resolvedAt:   resolvedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		client:       client,
		technician:   technician,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) ClientID() string {
	return t.clientID
}

func (t *Ticket) TechnicianID() *string {
	return t.technicianID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Client() *shared.Ref {
	return t.client
}

func (t *Ticket) Technician() *shared.Ref {
	return t.technician
}

// ChangeStatus moves the ticket to newStatus. Resolving stamps resolvedAt;
// going back to open or in_progress clears it. Closing keeps any stamp.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	now := biztime.NowUTC()
	t.status = newStatus
	t.updatedAt = now

	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = shared.TimePtr(now)
	}

	if newStatus.IsActive() {
		t.resolvedAt = nil
	}

	return nil
}

// AssignTechnician sets or, with nil, clears the assigned technician.
func (t *Ticket) AssignTechnician(technicianID *string) error {
	if technicianID != nil && *technicianID == "" {
		return fmt.Errorf("technician ID cannot be empty")
	}

	t.technicianID = technicianID
	t.technician = nil
	t.updatedAt = biztime.NowUTC()
	return nil
}
