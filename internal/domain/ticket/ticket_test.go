package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/shared"
	vo "ispdesk/internal/domain/ticket/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newValidTicket creates a ticket with sensible defaults for testing.
func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("T-00001", "client-1", "No signal", "Router lights are off since morning", vo.PriorityMedium, nil)
	require.NoError(t, err)
	return tk
}

// reconstructedTicket builds a persisted-style ticket via ReconstructTicket.
func reconstructedTicket(t *testing.T, status vo.TicketStatus, resolvedAt *time.Time) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		"ticket-1", "T-00007",
		"client-1",
		nil, // technicianID
		"Slow connection", "Speed drops every evening",
		vo.PriorityHigh,
		status,
		resolvedAt,
		now, now,
		&shared.Ref{ID: "client-1", Name: "Jane Doe"},
		nil, // technician
	)
	require.NoError(t, err)
	return tk
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewTicket_ValidInput(t *testing.T) {
	tk := newValidTicket(t)

	assert.NotEmpty(t, tk.ID())
	assert.Equal(t, "T-00001", tk.Number())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())
	assert.Nil(t, tk.TechnicianID())
	assert.Nil(t, tk.ResolvedAt())
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		clientID string
		title    string
		desc     string
		priority vo.Priority
		errMsg   string
	}{
		{"missing number", "", "c", "Title", "long enough text", vo.PriorityLow, "ticket number"},
		{"missing client", "T-00001", "", "Title", "long enough text", vo.PriorityLow, "client ID"},
		{"short title", "T-00001", "c", "ab", "long enough text", vo.PriorityLow, "title"},
		{"short description", "T-00001", "c", "Title", "too short", vo.PriorityLow, "description"},
		{"bad priority", "T-00001", "c", "Title", "long enough text", vo.Priority("urgent"), "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.number, tt.clientID, tt.title, tt.desc, tt.priority, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReconstructTicket_RejectsInvalidStatus(t *testing.T) {
	now := time.Now()
	_, err := ReconstructTicket("id", "T-00001", "c", nil, "t", "d", vo.PriorityLow, vo.TicketStatus("new"), nil, now, now, nil, nil)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Status Tests
// ---------------------------------------------------------------------------

func TestTicket_ChangeStatus_ResolvedStampsTime(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tk.ResolvedAt())
	assert.WithinDuration(t, time.Now(), *tk.ResolvedAt(), time.Minute)
}

func TestTicket_ChangeStatus_ClosingKeepsResolvedAt(t *testing.T) {
	resolved := time.Now().Add(-time.Hour).UTC()
	tk := reconstructedTicket(t, vo.StatusResolved, &resolved)

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	require.NotNil(t, tk.ResolvedAt())
	assert.Equal(t, resolved, *tk.ResolvedAt())
}

func TestTicket_ChangeStatus_ReopeningClearsResolvedAt(t *testing.T) {
	for _, target := range []vo.TicketStatus{vo.StatusOpen, vo.StatusInProgress} {
		t.Run(target.String(), func(t *testing.T) {
			resolved := time.Now().UTC()
			tk := reconstructedTicket(t, vo.StatusResolved, &resolved)

			require.NoError(t, tk.ChangeStatus(target))
			assert.Equal(t, target, tk.Status())
			assert.Nil(t, tk.ResolvedAt())
		})
	}
}

func TestTicket_ChangeStatus_AnyToAny(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusClosed, nil)

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestTicket_ChangeStatus_Invalid(t *testing.T) {
	tk := newValidTicket(t)

	err := tk.ChangeStatus(vo.TicketStatus("pending"))
	assert.Error(t, err)
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

// ---------------------------------------------------------------------------
// Assignment Tests
// ---------------------------------------------------------------------------

func TestTicket_AssignTechnician(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen, nil)

	require.NoError(t, tk.AssignTechnician(strPtr("tech-1")))
	require.NotNil(t, tk.TechnicianID())
	assert.Equal(t, "tech-1", *tk.TechnicianID())

	require.NoError(t, tk.AssignTechnician(nil))
	assert.Nil(t, tk.TechnicianID())

	assert.Error(t, tk.AssignTechnician(strPtr("")))
}
