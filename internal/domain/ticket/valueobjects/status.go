package valueobjects

import (
	"fmt"
	"slices"
)

// TicketStatus is where a ticket sits in the support workflow.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists every status in workflow order.
var TicketStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// ActiveTicketStatuses are the statuses counted as open work on the dashboard.
var ActiveTicketStatuses = []TicketStatus{StatusOpen, StatusInProgress}

func (ts TicketStatus) String() string { return string(ts) }

func (ts TicketStatus) IsValid() bool {
	return slices.Contains(TicketStatuses, ts)
}

func (ts TicketStatus) IsActive() bool {
	return slices.Contains(ActiveTicketStatuses, ts)
}

// IsResolved reports the one status that stamps resolved_at.
func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func NewTicketStatus(s string) (TicketStatus, error) {
	if ts := TicketStatus(s); ts.IsValid() {
		return ts, nil
	}
	return "", fmt.Errorf("invalid ticket status: %q", s)
}
