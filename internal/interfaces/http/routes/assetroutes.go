package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
)

// AssetRouteConfig groups the equipment the ISP owns: stock items and the
// network devices in service.
type AssetRouteConfig struct {
	InventoryHandler *handlers.InventoryHandler
	DeviceHandler    *handlers.DeviceHandler
}

func SetupAssetRoutes(api *gin.RouterGroup, cfg *AssetRouteConfig) {
	inventory := api.Group("/inventory")
	{
		inventory.POST("", cfg.InventoryHandler.CreateItem)
		inventory.GET("", cfg.InventoryHandler.ListItems)
		inventory.PATCH("/:id/status", cfg.InventoryHandler.UpdateItemStatus)
	}

	devices := api.Group("/devices")
	{
		devices.POST("", cfg.DeviceHandler.CreateDevice)
		devices.GET("", cfg.DeviceHandler.ListDevices)
		devices.PATCH("/:id/status", cfg.DeviceHandler.UpdateDeviceStatus)
	}
}
