package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	deviceuc "ispdesk/internal/application/device/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type DeviceHandler struct {
	createDeviceUC deviceuc.CreateDeviceExecutor
	listDevicesUC  deviceuc.ListDevicesExecutor
	updateStatusUC deviceuc.UpdateDeviceStatusExecutor
	logger         logger.Interface
}

func NewDeviceHandler(
	createDeviceUC deviceuc.CreateDeviceExecutor,
	listDevicesUC deviceuc.ListDevicesExecutor,
	updateStatusUC deviceuc.UpdateDeviceStatusExecutor,
	logger logger.Interface,
) *DeviceHandler {
	return &DeviceHandler{
		createDeviceUC: createDeviceUC,
		listDevicesUC:  listDevicesUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var cmd deviceuc.CreateDeviceCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create device", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createDeviceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Device created successfully")
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	result, err := h.listDevicesUC.Execute(c.Request.Context(), deviceuc.ListDevicesQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}

func (h *DeviceHandler) UpdateDeviceStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update device status", "device_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := deviceuc.UpdateDeviceStatusCommand{
		DeviceID: c.Param("id"),
		Status:   req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device status updated successfully", result)
}
