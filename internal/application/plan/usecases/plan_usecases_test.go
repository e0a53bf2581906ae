package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/plan"
	apperrors "ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/testutil"
)

func mustPlan(t *testing.T, id, name string, price int64) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(id, name, 100, 20, decimal.NewFromInt(price), time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestCreatePlanUseCase_Success(t *testing.T) {
	var saved *plan.Plan
	repo := &mockPlanRepository{
		CreateFunc: func(ctx context.Context, p *plan.Plan) error {
			saved = p
			return nil
		},
	}

	uc := NewCreatePlanUseCase(repo, testutil.NewMockLogger())
	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:          "Fibra 100",
		DownloadSpeed: 100,
		UploadSpeed:   50,
		Price:         decimal.NewFromInt(65000),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID(), result.ID)
	assert.Equal(t, "Fibra 100", result.Name)
	assert.True(t, decimal.NewFromInt(65000).Equal(result.Price))
}

func TestCreatePlanUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreatePlanCommand
	}{
		{"short name", CreatePlanCommand{Name: "ab", DownloadSpeed: 10, UploadSpeed: 5, Price: decimal.NewFromInt(1)}},
		{"zero download", CreatePlanCommand{Name: "Basic", UploadSpeed: 5, Price: decimal.NewFromInt(1)}},
		{"zero price", CreatePlanCommand{Name: "Basic", DownloadSpeed: 10, UploadSpeed: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPlanRepository{
				CreateFunc: func(ctx context.Context, p *plan.Plan) error {
					t.Fatal("create must not be called")
					return nil
				},
			}
			uc := NewCreatePlanUseCase(repo, testutil.NewMockLogger())
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestListPlansUseCase_FiltersByName(t *testing.T) {
	repo := &mockPlanRepository{
		ListFunc: func(ctx context.Context) ([]*plan.Plan, error) {
			return []*plan.Plan{
				mustPlan(t, "p1", "Basic 20", 30000),
				mustPlan(t, "p2", "Fibra 100", 65000),
			}, nil
		},
	}

	uc := NewListPlansUseCase(repo, testutil.NewMockLogger())
	result, err := uc.Execute(context.Background(), ListPlansQuery{Search: "fibra"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "p2", result.Items[0].ID)
}

func TestListPlansUseCase_RepositoryError(t *testing.T) {
	repo := &mockPlanRepository{
		ListFunc: func(ctx context.Context) ([]*plan.Plan, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := NewListPlansUseCase(repo, testutil.NewMockLogger())
	_, err := uc.Execute(context.Background(), ListPlansQuery{})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestListPlanOptionsUseCase(t *testing.T) {
	repo := &mockPlanRepository{
		ListFunc: func(ctx context.Context) ([]*plan.Plan, error) {
			return []*plan.Plan{mustPlan(t, "p1", "Basic 20", 30000)}, nil
		},
	}

	uc := NewListPlanOptionsUseCase(repo, testutil.NewMockLogger())
	options, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "p1", options[0].ID)
	assert.Equal(t, "Basic 20", options[0].Name)
}
