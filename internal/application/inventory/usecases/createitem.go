package usecases

import (
	"context"

	"ispdesk/internal/application/inventory/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateItemCommand struct {
	Name            string `json:"name" validate:"required,min=3,max=100"`
	Type            string `json:"type" validate:"required,min=1,max=50"`
	Model           string `json:"model" validate:"max=100"`
	SerialNumber    string `json:"serial_number" validate:"max=100"`
	PurchaseDate    string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02,notfuture"`
	WarrantyEndDate string `json:"warranty_end_date" validate:"omitempty,datetime=2006-01-02"`
	Status          string `json:"status" validate:"omitempty,oneof=available assigned maintenance damaged expired"`
	AssignedTo      string `json:"assigned_to" validate:"omitempty,uuid"`
}

type CreateItemUseCase struct {
	itemRepo   inventory.Repository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateItemUseCase(
	itemRepo inventory.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:   itemRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error) {
	uc.logger.Infow("executing create inventory item use case", "name", cmd.Name, "type", cmd.Type)

	// The assignee is only meaningful for assigned items; for any other status
	// it is dropped before validation, whatever it holds.
	if cmd.Status != inventory.StatusAssigned.String() {
		cmd.AssignedTo = ""
	}

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	status, err := inventory.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Dates already passed the datetime check above.
	purchaseDate, _ := utils.ParseDate(cmd.PurchaseDate)
	warrantyEndDate, _ := utils.ParseDate(cmd.WarrantyEndDate)

	assignedTo := utils.NilIfEmpty(cmd.AssignedTo)
	if status.IsAssigned() && assignedTo != nil {
		owner, err := uc.clientRepo.GetByID(ctx, *assignedTo)
		if err != nil {
			uc.logger.WithContext(ctx).Errorw("failed to load client", "error", err, "client_id", *assignedTo)
			return nil, errors.NewInternalError("failed to load client")
		}
		if owner == nil {
			return nil, errors.NewValidationError("Validation failed", "assigned_to does not reference an existing client")
		}
	}

	item, err := inventory.NewItem(cmd.Name, cmd.Type, inventory.Details{
		Model:           utils.NilIfEmpty(cmd.Model),
		SerialNumber:    utils.NilIfEmpty(cmd.SerialNumber),
		PurchaseDate:    purchaseDate,
		WarrantyEndDate: warrantyEndDate,
	}, status, assignedTo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		uc.logger.Errorw("failed to create inventory item", "error", err)
		return nil, errors.NewInternalError("failed to create inventory item")
	}

	uc.logger.Infow("inventory item created successfully", "item_id", item.ID())

	reloaded, err := uc.itemRepo.GetByID(ctx, item.ID())
	if err != nil || reloaded == nil {
		uc.logger.Warnw("failed to reload created item", "error", err, "item_id", item.ID())
		return dto.ToItemDTO(item), nil
	}
	return dto.ToItemDTO(reloaded), nil
}
