package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/plan/dto"
)

type CreatePlanExecutor interface {
	Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error)
}

type ListPlansExecutor interface {
	Execute(ctx context.Context, query ListPlansQuery) (*commondto.ListResult[*dto.PlanDTO], error)
}

type ListPlanOptionsExecutor interface {
	Execute(ctx context.Context) ([]commondto.Option, error)
}
