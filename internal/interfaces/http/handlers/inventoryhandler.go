package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	inventoryuc "ispdesk/internal/application/inventory/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type InventoryHandler struct {
	createItemUC   inventoryuc.CreateItemExecutor
	listItemsUC    inventoryuc.ListItemsExecutor
	updateStatusUC inventoryuc.UpdateItemStatusExecutor
	logger         logger.Interface
}

func NewInventoryHandler(
	createItemUC inventoryuc.CreateItemExecutor,
	listItemsUC inventoryuc.ListItemsExecutor,
	updateStatusUC inventoryuc.UpdateItemStatusExecutor,
	logger logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		createItemUC:   createItemUC,
		listItemsUC:    listItemsUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var cmd inventoryuc.CreateItemCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create inventory item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inventory item created successfully")
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	result, err := h.listItemsUC.Execute(c.Request.Context(), inventoryuc.ListItemsQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}

func (h *InventoryHandler) UpdateItemStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update inventory item status", "item_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := inventoryuc.UpdateItemStatusCommand{
		ItemID: c.Param("id"),
		Status: req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inventory item status updated successfully", result)
}
