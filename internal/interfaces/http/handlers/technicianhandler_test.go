package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	commondto "ispdesk/internal/application/common/dto"
	techniciandto "ispdesk/internal/application/technician/dto"
	technicianuc "ispdesk/internal/application/technician/usecases"
	"ispdesk/internal/interfaces/http/handlers/testutil"
	"ispdesk/internal/shared/errors"
)

const testTechnicianID = "0190a5c2-0000-7000-8000-0000000000d1"

func newTestTechnicianHandler() (
	*TechnicianHandler,
	*mockExecutor[technicianuc.CreateTechnicianCommand, *techniciandto.TechnicianDTO],
	*mockExecutor[technicianuc.ListTechniciansQuery, *commondto.ListResult[*techniciandto.TechnicianDTO]],
	*mockExecutor[technicianuc.UpdateTechnicianStatusCommand, *techniciandto.TechnicianDTO],
) {
	create := &mockExecutor[technicianuc.CreateTechnicianCommand, *techniciandto.TechnicianDTO]{}
	list := &mockExecutor[technicianuc.ListTechniciansQuery, *commondto.ListResult[*techniciandto.TechnicianDTO]]{}
	update := &mockExecutor[technicianuc.UpdateTechnicianStatusCommand, *techniciandto.TechnicianDTO]{}
	return NewTechnicianHandler(create, list, update, testutil.NewMockLogger()), create, list, update
}

func testTechnicianDTO(status string) *techniciandto.TechnicianDTO {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return &techniciandto.TechnicianDTO{
		ID:        testTechnicianID,
		Name:      "Carlos Rojas",
		Phone:     "+51987654321",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTechnicianHandler_CreateTechnician(t *testing.T) {
	h, create, _, _ := newTestTechnicianHandler()
	create.result = testTechnicianDTO("active")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/technicians", map[string]string{
		"name":  "Carlos Rojas",
		"phone": "+51987654321",
	})

	h.CreateTechnician(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Carlos Rojas", create.got.Name)
	assert.Empty(t, create.got.Status)
}

func TestTechnicianHandler_ListTechnicians(t *testing.T) {
	h, _, list, _ := newTestTechnicianHandler()
	list.result = &commondto.ListResult[*techniciandto.TechnicianDTO]{Items: []*techniciandto.TechnicianDTO{}}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/technicians", nil)
	testutil.SetQueryParams(c, map[string]string{"search": "rojas"})

	h.ListTechnicians(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rojas", list.got.Search)
}

func TestTechnicianHandler_UpdateTechnicianStatus_InvalidStatus(t *testing.T) {
	h, _, _, update := newTestTechnicianHandler()
	update.err = errors.NewValidationError("Validation failed", "status must be one of [active inactive on_leave]")

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/technicians/"+testTechnicianID+"/status", map[string]string{"status": "retired"})
	testutil.SetURLParam(c, "id", testTechnicianID)

	h.UpdateTechnicianStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, testTechnicianID, update.got.TechnicianID)
	assert.Equal(t, "retired", update.got.Status)
}
