package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"ispdesk/internal/application/plan/dto"
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreatePlanCommand struct {
	Name          string          `json:"name" validate:"required,min=3,max=100"`
	DownloadSpeed int             `json:"download_speed" validate:"gt=0"`
	UploadSpeed   int             `json:"upload_speed" validate:"gt=0"`
	Price         decimal.Decimal `json:"price"`
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing create plan use case", "name", cmd.Name)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !cmd.Price.IsPositive() {
		return nil, errors.NewValidationError("Validation failed", "price must be greater than 0")
	}

	p, err := plan.NewPlan(cmd.Name, cmd.DownloadSpeed, cmd.UploadSpeed, cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, errors.NewInternalError("failed to create plan")
	}

	uc.logger.Infow("plan created successfully", "plan_id", p.ID())
	return dto.ToPlanDTO(p), nil
}
