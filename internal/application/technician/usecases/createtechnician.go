package usecases

import (
	"context"

	"ispdesk/internal/application/technician/dto"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateTechnicianCommand struct {
	Name   string `json:"name" validate:"required,min=3,max=100"`
	Phone  string `json:"phone" validate:"required,min=10,max=20"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
}

type CreateTechnicianUseCase struct {
	technicianRepo technician.Repository
	logger         logger.Interface
}

func NewCreateTechnicianUseCase(technicianRepo technician.Repository, logger logger.Interface) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*dto.TechnicianDTO, error) {
	uc.logger.Infow("executing create technician use case", "name", cmd.Name)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	status, err := technician.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tech, err := technician.NewTechnician(cmd.Name, cmd.Phone, utils.NilIfEmpty(cmd.Email), status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.technicianRepo.Create(ctx, tech); err != nil {
		uc.logger.Errorw("failed to create technician", "error", err)
		return nil, errors.NewInternalError("failed to create technician")
	}

	uc.logger.Infow("technician created successfully", "technician_id", tech.ID())
	return dto.ToTechnicianDTO(tech), nil
}
