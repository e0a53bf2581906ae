// Package technician models field staff that tickets are assigned to.
package technician

import (
	"fmt"
	"strings"
	"time"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
	StatusOnLeave:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// NewStatus parses s, treating an empty value as active.
func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusActive, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid technician status: %s", s)
	}
	return st, nil
}

type Technician struct {
	id        string
	name      string
	phone     string
	email     *string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewTechnician(name, phone string, email *string, status Status) (*Technician, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if len(name) < 3 {
		return nil, fmt.Errorf("technician name must be at least 3 characters")
	}
	if len(phone) < 10 {
		return nil, fmt.Errorf("phone must be at least 10 characters")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid technician status: %s", status)
	}

	now := biztime.NowUTC()
	return &Technician{
		id:        id.New(),
		name:      name,
		phone:     phone,
		email:     email,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTechnician(
	id string,
	name string,
	phone string,
	email *string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Technician, error) {
	if id == "" {
		return nil, fmt.Errorf("technician ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid technician status: %s", status)
	}
	return &Technician{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Technician) ID() string {
	return t.id
}

func (t *Technician) Name() string {
	return t.name
}

func (t *Technician) Phone() string {
	return t.phone
}

func (t *Technician) Email() *string {
	return t.email
}

func (t *Technician) Status() Status {
	return t.status
}

func (t *Technician) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Technician) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsAvailable reports whether new tickets may be assigned to the technician.
func (t *Technician) IsAvailable() bool {
	return t.status == StatusActive
}

func (t *Technician) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid technician status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}
