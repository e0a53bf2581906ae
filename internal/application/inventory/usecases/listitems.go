package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/inventory/dto"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
)

type ListItemsQuery struct {
	Search string
}

type ListItemsUseCase struct {
	itemRepo inventory.Repository
	logger   logger.Interface
}

func NewListItemsUseCase(itemRepo inventory.Repository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, query ListItemsQuery) (*commondto.ListResult[*dto.ItemDTO], error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load inventory", "error", err)
		return nil, errors.NewInternalError("failed to load inventory")
	}
	return commondto.NewListResult(items, query.Search, dto.SearchFields, dto.ToItemDTO), nil
}
