package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientdto "ispdesk/internal/application/client/dto"
	commondto "ispdesk/internal/application/common/dto"
	dashboarddto "ispdesk/internal/application/dashboard/dto"
	"ispdesk/internal/interfaces/http/handlers/testutil"
	"ispdesk/internal/shared/errors"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	stats := &mockLister[*dashboarddto.StatsDTO]{
		result: &dashboarddto.StatsDTO{
			Clients:     dashboarddto.ToCountsDTO(map[string]int64{"active": 2, "suspended": 1}),
			Tickets:     dashboarddto.ToCountsDTO(map[string]int64{"open": 1}),
			OpenTickets: 1,
			Invoices: dashboarddto.InvoiceStatsDTO{
				Pending: dashboarddto.InvoiceSummaryDTO{Count: 2, Total: decimal.RequireFromString("80.50")},
			},
			Devices:     dashboarddto.ToCountsDTO(nil),
			GeneratedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewDashboardHandler(stats, &mockLister[*dashboarddto.NetworkDTO]{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/dashboard/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dashboarddto.StatsDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(3), data.Clients.Total)
	assert.Equal(t, int64(1), data.OpenTickets)
	assert.True(t, data.Invoices.Pending.Total.Equal(decimal.RequireFromString("80.5")))
	assert.NotNil(t, data.Devices.ByStatus)
}

func TestDashboardHandler_GetStats_Failure(t *testing.T) {
	stats := &mockLister[*dashboarddto.StatsDTO]{err: errors.NewInternalError("failed to load dashboard stats")}
	h := NewDashboardHandler(stats, &mockLister[*dashboarddto.NetworkDTO]{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/dashboard/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDashboardHandler_GetNetwork(t *testing.T) {
	network := &mockLister[*dashboarddto.NetworkDTO]{
		result: &dashboarddto.NetworkDTO{
			Routers: []dashboarddto.RouterStatusDTO{
				{Name: "Core", Status: "online", CPULoad: 35, MemoryUsage: 60, Uptime: "15d 7h"},
			},
		},
	}
	h := NewDashboardHandler(&mockLister[*dashboarddto.StatsDTO]{}, network, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/dashboard/network", nil)

	h.GetNetwork(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dashboarddto.NetworkDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Routers, 1)
	assert.Equal(t, "Core", data.Routers[0].Name)
	assert.Nil(t, data.UpdatedAt)
}

func TestReferenceHandler(t *testing.T) {
	planID := "0190a5c2-0000-7000-8000-0000000000a1"
	plans := &mockLister[[]commondto.Option]{result: []commondto.Option{{ID: planID, Name: "Hogar 50"}}}
	clients := &mockLister[[]clientdto.ClientOption]{result: []clientdto.ClientOption{{ID: testClientID, Name: "Juan Perez", PlanID: &planID}}}
	technicians := &mockLister[[]commondto.Option]{result: []commondto.Option{}}
	h := NewReferenceHandler(plans, clients, technicians, testutil.NewMockLogger())

	t.Run("plans", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/reference/plans", nil)
		h.ListPlans(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `[{"id":"`+planID+`","name":"Hogar 50"}]`, string(resp.Data))
	})

	t.Run("clients carry plan id", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/reference/clients", nil)
		h.ListClients(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `[{"id":"`+testClientID+`","name":"Juan Perez","plan_id":"`+planID+`"}]`, string(resp.Data))
	})

	t.Run("no active technicians", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/reference/technicians", nil)
		h.ListTechnicians(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `[]`, string(resp.Data))
	})
}
