package usecases

import (
	"context"

	"ispdesk/internal/application/client/dto"
	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/mapper"
)

type ListClientsQuery struct {
	Search string
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*commondto.ListResult[*dto.ClientDTO], error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load clients", "error", err)
		return nil, errors.NewInternalError("failed to load clients")
	}
	return commondto.NewListResult(clients, query.Search, dto.SearchFields, dto.ToClientDTO), nil
}

type ListClientOptionsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientOptionsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientOptionsUseCase {
	return &ListClientOptionsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientOptionsUseCase) Execute(ctx context.Context) ([]dto.ClientOption, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load client options", "error", err)
		return nil, errors.NewInternalError("failed to load clients")
	}
	return mapper.MapSlice(clients, dto.ToClientOption), nil
}
