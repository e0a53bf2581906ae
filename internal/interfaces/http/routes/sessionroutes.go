package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
	"ispdesk/internal/interfaces/http/middleware"
)

// SessionRouteConfig holds dependencies for gate session routes.
type SessionRouteConfig struct {
	SessionHandler  *handlers.SessionHandler
	GateMiddleware  *middleware.GateMiddleware
	ConnectThrottle gin.HandlerFunc
}

// SetupSessionRoutes configures the connect/disconnect endpoints. They resolve
// the session but never require it to be connected.
func SetupSessionRoutes(api *gin.RouterGroup, cfg *SessionRouteConfig) {
	session := api.Group("/session")
	session.Use(cfg.GateMiddleware.Resolve())
	{
		session.GET("", cfg.SessionHandler.GetState)
		session.POST("/connect", cfg.ConnectThrottle, cfg.SessionHandler.Connect)
		session.POST("/disconnect", cfg.SessionHandler.Disconnect)
	}
}
