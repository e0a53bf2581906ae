package usecases

import (
	"context"

	"ispdesk/internal/application/inventory/dto"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type UpdateItemStatusCommand struct {
	ItemID string `json:"-" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=available assigned maintenance damaged expired"`
}

type UpdateItemStatusUseCase struct {
	itemRepo inventory.Repository
	logger   logger.Interface
}

func NewUpdateItemStatusUseCase(itemRepo inventory.Repository, logger logger.Interface) *UpdateItemStatusUseCase {
	return &UpdateItemStatusUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Execute changes the status. Moving an item out of assigned releases it
// from its client.
func (uc *UpdateItemStatusUseCase) Execute(ctx context.Context, cmd UpdateItemStatusCommand) (*dto.ItemDTO, error) {
	uc.logger.Infow("executing update inventory status use case", "item_id", cmd.ItemID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(ctx, cmd.ItemID)
	if err != nil {
		uc.logger.Errorw("failed to get inventory item", "error", err, "item_id", cmd.ItemID)
		return nil, errors.NewInternalError("failed to get inventory item")
	}
	if item == nil {
		return nil, errors.NewNotFoundError("inventory item not found", cmd.ItemID)
	}

	if err := item.ChangeStatus(inventory.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.UpdateStatus(ctx, item); err != nil {
		uc.logger.Errorw("failed to update inventory status", "error", err, "item_id", cmd.ItemID)
		return nil, errors.NewInternalError("failed to update inventory status")
	}

	updated, err := uc.itemRepo.GetByID(ctx, cmd.ItemID)
	if err != nil || updated == nil {
		uc.logger.Errorw("failed to reload inventory item", "error", err, "item_id", cmd.ItemID)
		return nil, errors.NewInternalError("failed to reload inventory item")
	}
	return dto.ToItemDTO(updated), nil
}
