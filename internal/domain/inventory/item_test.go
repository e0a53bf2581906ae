package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/shared"
)

func strPtr(s string) *string { return &s }

func TestNewItem_AssignedToNulledUnlessAssigned(t *testing.T) {
	clientID := strPtr("0190f3a4-5c6b-7d8e-9f01-23456789abcd")

	for _, status := range []Status{StatusAvailable, StatusMaintenance, StatusDamaged, StatusExpired} {
		t.Run(status.String(), func(t *testing.T) {
			item, err := NewItem("ONT Huawei", "ont", Details{}, status, clientID)
			require.NoError(t, err)
			assert.Nil(t, item.AssignedTo())
		})
	}

	item, err := NewItem("ONT Huawei", "ont", Details{}, StatusAssigned, clientID)
	require.NoError(t, err)
	require.NotNil(t, item.AssignedTo())
	assert.Equal(t, *clientID, *item.AssignedTo())
	assert.NotSame(t, clientID, item.AssignedTo())
}

func TestNewItem_Validation(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 2)
	today := time.Now().UTC()

	tests := []struct {
		name     string
		iname    string
		itemType string
		details  Details
		status   Status
		wantErr  bool
	}{
		{"valid", "Router TP-Link", "router", Details{Model: strPtr("Archer C6")}, StatusAvailable, false},
		{"purchased today", "Router TP-Link", "router", Details{PurchaseDate: &today}, StatusAvailable, false},
		{"short name", "RT", "router", Details{}, StatusAvailable, true},
		{"missing type", "Router TP-Link", " ", Details{}, StatusAvailable, true},
		{"bad status", "Router TP-Link", "router", Details{}, Status("lost"), true},
		{"future purchase", "Router TP-Link", "router", Details{PurchaseDate: &tomorrow}, StatusAvailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.iname, tt.itemType, tt.details, tt.status, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItem_ChangeStatus_ReleasesAssignment(t *testing.T) {
	now := time.Now().UTC()
	item, err := ReconstructItem("item-1", "ONT Huawei", "ont", Details{}, StatusAssigned,
		strPtr("client-1"), now, now, &shared.Ref{ID: "client-1", Name: "Jane Doe"})
	require.NoError(t, err)

	require.NoError(t, item.ChangeStatus(StatusMaintenance))
	assert.Nil(t, item.AssignedTo())
	assert.Nil(t, item.Client())

	// Moving back to assigned does not resurrect the old client.
	require.NoError(t, item.ChangeStatus(StatusAssigned))
	assert.Nil(t, item.AssignedTo())
}

func TestItem_IsUnderWarranty(t *testing.T) {
	end := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	item, err := NewItem("Switch 24p", "switch", Details{WarrantyEndDate: &end}, StatusAvailable, nil)
	require.NoError(t, err)

	assert.True(t, item.IsUnderWarranty(end.AddDate(0, -1, 0)))
	assert.True(t, item.IsUnderWarranty(end))
	assert.False(t, item.IsUnderWarranty(end.AddDate(0, 0, 1)))
}
