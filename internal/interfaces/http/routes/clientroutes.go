package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
)

type ClientRouteConfig struct {
	ClientHandler *handlers.ClientHandler
}

// SetupClientRoutes configures client routes on a group that already requires
// a connected session.
func SetupClientRoutes(api *gin.RouterGroup, cfg *ClientRouteConfig) {
	clients := api.Group("/clients")
	{
		clients.POST("", cfg.ClientHandler.CreateClient)
		clients.GET("", cfg.ClientHandler.ListClients)
		clients.PATCH("/:id/status", cfg.ClientHandler.UpdateClientStatus)
		clients.GET("/:id", cfg.ClientHandler.GetClient)
	}
}
