// Package invoice models client billing.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/domain/shared"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

// DefaultDueDays is how far out the due date lands when none is given.
const DefaultDueDays = 30

type Invoice struct {
	id          string
	number      string
	clientID    string
	amount      decimal.Decimal
	status      Status
	dueDate     time.Time
	paymentDate *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	client      *shared.Ref
}

// NewInvoice issues a pending invoice. A zero dueDate defaults to
// DefaultDueDays from now.
func NewInvoice(number string, clientID string, amount decimal.Decimal, dueDate time.Time) (*Invoice, error) {
	if number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	now := biztime.NowUTC()
	if dueDate.IsZero() {
		dueDate = biztime.AddDays(now, DefaultDueDays)
	}

	return &Invoice{
		id:        id.New(),
		number:    number,
		clientID:  clientID,
		amount:    amount,
		status:    StatusPending,
		dueDate:   dueDate.UTC(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructInvoice(
	id string,
	number string,
	clientID string,
	amount decimal.Decimal,
	status Status,
	dueDate time.Time,
	paymentDate *time.Time,
	createdAt, updatedAt time.Time,
	client *shared.Ref,
) (*Invoice, error) {
	if id == "" {
		return nil, fmt.Errorf("invoice ID cannot be empty")
	}
	if number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", status)
	}

	return &Invoice{
		id:          id,
		number:      number,
		clientID:    clientID,
		amount:      amount,
		status:      status,
		dueDate:     dueDate,
		paymentDate: paymentDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		client:      client,
	}, nil
}

func (i *Invoice) ID() string {
	return i.id
}

func (i *Invoice) Number() string {
	return i.number
}

func (i *Invoice) ClientID() string {
	return i.clientID
}

func (i *Invoice) Amount() decimal.Decimal {
	return i.amount
}

func (i *Invoice) Status() Status {
	return i.status
}

func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

func (i *Invoice) PaymentDate() *time.Time {
	return i.paymentDate
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invoice) UpdatedAt() time.Time {
	return i.updatedAt
}

// Client returns the joined client display data, if loaded.
func (i *Invoice) Client() *shared.Ref {
	return i.client
}

// ChangeStatus moves the invoice to newStatus. Marking it paid stamps the
// payment date; moving away from paid clears it.
func (i *Invoice) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", newStatus)
	}
	if i.status == newStatus {
		return nil
	}

	now := biztime.NowUTC()
	if newStatus.IsPaid() {
		i.paymentDate = shared.TimePtr(now)
	} else {
		i.paymentDate = nil
	}

	i.status = newStatus
	i.updatedAt = now
	return nil
}

// IsOverdue reports whether a pending invoice has passed its due date.
func (i *Invoice) IsOverdue() bool {
	if i.status == StatusOverdue {
		return true
	}
	return i.status == StatusPending && shared.IsPastDue(i.dueDate)
}
