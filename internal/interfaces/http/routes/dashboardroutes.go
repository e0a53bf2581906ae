package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	ReferenceHandler *handlers.ReferenceHandler
}

func SetupDashboardRoutes(api *gin.RouterGroup, cfg *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", cfg.DashboardHandler.GetStats)
		dashboard.GET("/network", cfg.DashboardHandler.GetNetwork)
	}

	// Selector data for the create dialogs, fetched fresh on every open.
	reference := api.Group("/reference")
	{
		reference.GET("/plans", cfg.ReferenceHandler.ListPlans)
		reference.GET("/clients", cfg.ReferenceHandler.ListClients)
		reference.GET("/technicians", cfg.ReferenceHandler.ListTechnicians)
	}
}
