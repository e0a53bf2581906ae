package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/inventory/dto"
)

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error)
}

type ListItemsExecutor interface {
	Execute(ctx context.Context, query ListItemsQuery) (*commondto.ListResult[*dto.ItemDTO], error)
}

type UpdateItemStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateItemStatusCommand) (*dto.ItemDTO, error)
}
