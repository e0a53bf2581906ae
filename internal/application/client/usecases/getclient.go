package usecases

import (
	"context"

	"ispdesk/internal/application/client/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, clientID string) (*dto.ClientDTO, error) {
	if err := utils.ValidateID(clientID); err != nil {
		return nil, err
	}

	c, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", clientID)
		return nil, errors.NewInternalError("failed to get client")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("client not found", clientID)
	}

	return dto.ToClientDTO(c), nil
}
