package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/plan/dto"
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/mapper"
)

type ListPlansQuery struct {
	Search string
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*commondto.ListResult[*dto.PlanDTO], error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load plans", "error", err)
		return nil, errors.NewInternalError("failed to load plans")
	}
	return commondto.NewListResult(plans, query.Search, dto.SearchFields, dto.ToPlanDTO), nil
}

// ListPlanOptionsUseCase feeds the plan selector of the client dialog. It is
// re-read on every call.
type ListPlanOptionsUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlanOptionsUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlanOptionsUseCase {
	return &ListPlanOptionsUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlanOptionsUseCase) Execute(ctx context.Context) ([]commondto.Option, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load plan options", "error", err)
		return nil, errors.NewInternalError("failed to load plans")
	}
	return mapper.MapSlice(plans, dto.ToPlanOption), nil
}
