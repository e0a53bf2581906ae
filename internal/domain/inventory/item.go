// Package inventory models customer-premises equipment held in stock or
// lent to clients.
package inventory

import (
	"fmt"
	"strings"
	"time"

	"ispdesk/internal/domain/shared"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

// Details holds the optional descriptive fields of an item.
type Details struct {
	Model           *string
	SerialNumber    *string
	PurchaseDate    *time.Time
	WarrantyEndDate *time.Time
}

type Item struct {
	id         string
	name       string
	itemType   string
	details    Details
	status     Status
	assignedTo *string
	createdAt  time.Time
	updatedAt  time.Time
	client     *shared.Ref
}

// NewItem registers equipment. assignedTo is only kept when status is
// assigned; any other status drops it.
func NewItem(name, itemType string, details Details, status Status, assignedTo *string) (*Item, error) {
	name = strings.TrimSpace(name)
	itemType = strings.TrimSpace(itemType)
	if len(name) < 3 {
		return nil, fmt.Errorf("item name must be at least 3 characters")
	}
	if itemType == "" {
		return nil, fmt.Errorf("item type is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid inventory status: %s", status)
	}
	if details.PurchaseDate != nil && details.PurchaseDate.After(biztime.EndOfDayUTC(biztime.NowUTC())) {
		return nil, fmt.Errorf("purchase date cannot be in the future")
	}

	now := biztime.NowUTC()
	item := &Item{
		id:        id.New(),
		name:      name,
		itemType:  itemType,
		details:   details,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}
	item.assignedTo = assignmentFor(status, assignedTo)
	return item, nil
}

func ReconstructItem(
	id string,
	name string,
	itemType string,
	details Details,
	status Status,
	assignedTo *string,
	createdAt, updatedAt time.Time,
	client *shared.Ref,
) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("item ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid inventory status: %s", status)
	}
	return &Item{
		id:         id,
		name:       name,
		itemType:   itemType,
		details:    details,
		status:     status,
		assignedTo: assignedTo,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		client:     client,
	}, nil
}

// assignmentFor returns the client reference to store for status.
func assignmentFor(status Status, assignedTo *string) *string {
	if !status.IsAssigned() || assignedTo == nil || *assignedTo == "" {
		return nil
	}
	v := *assignedTo
	return &v
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Type() string {
	return i.itemType
}

func (i *Item) Model() *string {
	return i.details.Model
}

func (i *Item) SerialNumber() *string {
	return i.details.SerialNumber
}

func (i *Item) PurchaseDate() *time.Time {
	return i.details.PurchaseDate
}

func (i *Item) WarrantyEndDate() *time.Time {
	return i.details.WarrantyEndDate
}

func (i *Item) Status() Status {
	return i.status
}

func (i *Item) AssignedTo() *string {
	return i.assignedTo
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Client returns the joined client the item is lent to, if loaded.
func (i *Item) Client() *shared.Ref {
	return i.client
}

// ChangeStatus moves the item to newStatus. Leaving assigned releases the
// client reference so a stale assignment never survives.
func (i *Item) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid inventory status: %s", newStatus)
	}
	if i.status == newStatus {
		return nil
	}
	i.status = newStatus
	i.assignedTo = assignmentFor(newStatus, i.assignedTo)
	if i.assignedTo == nil {
		i.client = nil
	}
	i.updatedAt = biztime.NowUTC()
	return nil
}

// IsUnderWarranty reports whether the warranty covers the given instant.
func (i *Item) IsUnderWarranty(at time.Time) bool {
	return i.details.WarrantyEndDate != nil && !at.After(*i.details.WarrantyEndDate)
}
