package usecases

import (
	"context"

	"ispdesk/internal/application/client/dto"
	commondto "ispdesk/internal/application/common/dto"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*commondto.ListResult[*dto.ClientDTO], error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, clientID string) (*dto.ClientDTO, error)
}

type UpdateClientStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientStatusCommand) (*dto.ClientDTO, error)
}

type ListClientOptionsExecutor interface {
	Execute(ctx context.Context) ([]dto.ClientOption, error)
}
