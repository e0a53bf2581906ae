package usecases

import (
	"context"

	"ispdesk/internal/application/ticket/dto"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// AssignTechnicianCommand assigns a technician, or unassigns when
// TechnicianID is empty.
type AssignTechnicianCommand struct {
	TicketID     string `json:"-" validate:"required,uuid"`
	TechnicianID string `json:"technician_id" validate:"omitempty,uuid"`
}

type AssignTechnicianUseCase struct {
	ticketRepo     ticket.TicketRepository
	technicianRepo technician.Repository
	logger         logger.Interface
}

func NewAssignTechnicianUseCase(
	ticketRepo ticket.TicketRepository,
	technicianRepo technician.Repository,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		ticketRepo:     ticketRepo,
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign technician use case",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	technicianID := utils.NilIfEmpty(cmd.TechnicianID)
	if technicianID != nil {
		tech, err := uc.technicianRepo.GetByID(ctx, *technicianID)
		if err != nil {
			uc.logger.Errorw("failed to find technician", "error", err, "technician_id", *technicianID)
			return nil, errors.NewInternalError("failed to find technician")
		}
		if tech == nil {
			return nil, errors.NewNotFoundError("technician not found", *technicianID)
		}
		if !tech.IsAvailable() {
			uc.logger.Warnw("technician is not available",
				"technician_id", *technicianID,
				"status", tech.Status().String())
			return nil, errors.NewValidationError("technician is not active and cannot be assigned tickets")
		}
	}

	if err := t.AssignTechnician(technicianID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateTechnician(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket technician", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket technician updated", "ticket_id", cmd.TicketID)
	return reloadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
}
