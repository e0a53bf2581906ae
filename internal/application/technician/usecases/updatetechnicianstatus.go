package usecases

import (
	"context"

	"ispdesk/internal/application/technician/dto"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type UpdateTechnicianStatusCommand struct {
	TechnicianID string `json:"-" validate:"required,uuid"`
	Status       string `json:"status" validate:"required,oneof=active inactive on_leave"`
}

type UpdateTechnicianStatusUseCase struct {
	technicianRepo technician.Repository
	logger         logger.Interface
}

func NewUpdateTechnicianStatusUseCase(technicianRepo technician.Repository, logger logger.Interface) *UpdateTechnicianStatusUseCase {
	return &UpdateTechnicianStatusUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *UpdateTechnicianStatusUseCase) Execute(ctx context.Context, cmd UpdateTechnicianStatusCommand) (*dto.TechnicianDTO, error) {
	uc.logger.Infow("executing update technician status use case", "technician_id", cmd.TechnicianID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	tech, err := uc.technicianRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to get technician", "error", err, "technician_id", cmd.TechnicianID)
		return nil, errors.NewInternalError("failed to get technician")
	}
	if tech == nil {
		return nil, errors.NewNotFoundError("technician not found", cmd.TechnicianID)
	}

	if err := tech.ChangeStatus(technician.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.technicianRepo.UpdateStatus(ctx, tech); err != nil {
		uc.logger.Errorw("failed to update technician status", "error", err, "technician_id", cmd.TechnicianID)
		return nil, errors.NewInternalError("failed to update technician status")
	}

	updated, err := uc.technicianRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil || updated == nil {
		uc.logger.Errorw("failed to reload technician", "error", err, "technician_id", cmd.TechnicianID)
		return nil, errors.NewInternalError("failed to reload technician")
	}
	return dto.ToTechnicianDTO(updated), nil
}
