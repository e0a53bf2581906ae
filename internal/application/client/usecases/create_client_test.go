package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/plan"
	apperrors "ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/id"
	"ispdesk/internal/shared/testutil"
)

func validCreateClientCommand() CreateClientCommand {
	return CreateClientCommand{
		Name:           "Juan Perez",
		DocumentNumber: "45678912",
		Address:        "Av. Grau 123",
		Phone:          "987654321",
	}
}

func TestCreateClientUseCase_Success(t *testing.T) {
	planID := id.New()
	var saved *client.Client
	clientRepo := &mockClientRepository{
		CreateFunc: func(ctx context.Context, c *client.Client) error {
			saved = c
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*client.Client, error) {
			return saved, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*plan.Plan, error) {
			return newTestPlan(t, id), nil
		},
	}

	cmd := validCreateClientCommand()
	cmd.Email = ""
	cmd.IPAddress = "192.168.1.10"
	cmd.PlanID = planID

	uc := NewCreateClientUseCase(clientRepo, planRepo, testutil.NewMockLogger())
	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, "DNI", result.DocumentType)
	assert.Nil(t, result.Email)
	assert.Nil(t, result.MACAddress)
	require.NotNil(t, result.IPAddress)
	assert.Equal(t, "192.168.1.10", *result.IPAddress)
	require.NotNil(t, result.PlanID)
	assert.Equal(t, planID, *result.PlanID)
	assert.False(t, result.RegistrationDate.IsZero())
}

func TestCreateClientUseCase_UnknownPlan(t *testing.T) {
	clientRepo := &mockClientRepository{
		CreateFunc: func(ctx context.Context, c *client.Client) error {
			t.Fatal("create must not be called")
			return nil
		},
	}

	cmd := validCreateClientCommand()
	cmd.PlanID = id.New()

	uc := NewCreateClientUseCase(clientRepo, &mockPlanRepository{}, testutil.NewMockLogger())
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Details, "plan_id")
}

func TestCreateClientUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *CreateClientCommand)
		details string
	}{
		{"short name", func(cmd *CreateClientCommand) { cmd.Name = "Jo" }, "name must be at least 3 characters long"},
		{"bad document type", func(cmd *CreateClientCommand) { cmd.DocumentType = "SSN" }, "document_type must be one of"},
		{"short document", func(cmd *CreateClientCommand) { cmd.DocumentNumber = "123" }, "document_number"},
		{"bad email", func(cmd *CreateClientCommand) { cmd.Email = "not-an-email" }, "email must be a valid email address"},
		{"bad ip", func(cmd *CreateClientCommand) { cmd.IPAddress = "999.1.1.1" }, "ip_address must be a valid IP address"},
		{"bad mac", func(cmd *CreateClientCommand) { cmd.MACAddress = "00:11:22" }, "mac_address must be a valid MAC address"},
		{"bad plan id", func(cmd *CreateClientCommand) { cmd.PlanID = "plan-1" }, "plan_id must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateClientCommand()
			tt.mutate(&cmd)

			uc := NewCreateClientUseCase(&mockClientRepository{}, &mockPlanRepository{}, testutil.NewMockLogger())
			_, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Contains(t, appErr.Details, tt.details)
		})
	}
}

func TestCreateClientUseCase_RepositoryError(t *testing.T) {
	clientRepo := &mockClientRepository{
		CreateFunc: func(ctx context.Context, c *client.Client) error {
			return errors.New("duplicate key")
		},
	}

	uc := NewCreateClientUseCase(clientRepo, &mockPlanRepository{}, testutil.NewMockLogger())
	_, err := uc.Execute(context.Background(), validCreateClientCommand())

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
