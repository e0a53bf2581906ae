package usecases

import (
	"context"

	"ispdesk/internal/application/client/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type UpdateClientStatusCommand struct {
	ClientID string `json:"-" validate:"required,uuid"`
	Status   string `json:"status" validate:"required,oneof=active inactive suspended"`
}

type UpdateClientStatusUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientStatusUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientStatusUseCase {
	return &UpdateClientStatusUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Execute changes the status and returns the row as stored afterwards.
func (uc *UpdateClientStatusUseCase) Execute(ctx context.Context, cmd UpdateClientStatusCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing update client status use case", "client_id", cmd.ClientID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", cmd.ClientID)
		return nil, errors.NewInternalError("failed to get client")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("client not found", cmd.ClientID)
	}

	if err := c.ChangeStatus(client.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.UpdateStatus(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client status", "error", err, "client_id", cmd.ClientID)
		return nil, errors.NewInternalError("failed to update client status")
	}

	updated, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil || updated == nil {
		uc.logger.Errorw("failed to reload client", "error", err, "client_id", cmd.ClientID)
		return nil, errors.NewInternalError("failed to reload client")
	}

	uc.logger.Infow("client status updated", "client_id", cmd.ClientID, "status", cmd.Status)
	return dto.ToClientDTO(updated), nil
}
