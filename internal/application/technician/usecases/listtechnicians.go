package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/technician/dto"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/mapper"
)

type ListTechniciansQuery struct {
	Search string
}

type ListTechniciansUseCase struct {
	technicianRepo technician.Repository
	logger         logger.Interface
}

func NewListTechniciansUseCase(technicianRepo technician.Repository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, query ListTechniciansQuery) (*commondto.ListResult[*dto.TechnicianDTO], error) {
	technicians, err := uc.technicianRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load technicians", "error", err)
		return nil, errors.NewInternalError("failed to load technicians")
	}
	return commondto.NewListResult(technicians, query.Search, dto.SearchFields, dto.ToTechnicianDTO), nil
}

// ListAvailableTechniciansUseCase returns the technicians a ticket can be
// assigned to.
type ListAvailableTechniciansUseCase struct {
	technicianRepo technician.Repository
	logger         logger.Interface
}

func NewListAvailableTechniciansUseCase(technicianRepo technician.Repository, logger logger.Interface) *ListAvailableTechniciansUseCase {
	return &ListAvailableTechniciansUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *ListAvailableTechniciansUseCase) Execute(ctx context.Context) ([]commondto.Option, error) {
	technicians, err := uc.technicianRepo.ListByStatus(ctx, technician.StatusActive)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load available technicians", "error", err)
		return nil, errors.NewInternalError("failed to load technicians")
	}
	return mapper.MapSlice(technicians, dto.ToTechnicianOption), nil
}
