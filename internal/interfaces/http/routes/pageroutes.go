package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
	"ispdesk/internal/interfaces/http/middleware"
)

// PagePaths are the dashboard screens. Every one except /login sits behind
// the gate.
var PagePaths = []string{
	"/",
	"/clients",
	"/clients/:id",
	"/network",
	"/tickets",
	"/billing",
	"/technicians",
	"/inventory",
	"/reports",
	"/settings",
	"/login",
}

type PageRouteConfig struct {
	PageHandler    *handlers.PageHandler
	GateMiddleware *middleware.GateMiddleware
}

// SetupPageRoutes registers the page routes, the health probe and the
// catch-all for unknown paths.
func SetupPageRoutes(engine *gin.Engine, cfg *PageRouteConfig) {
	engine.GET("/health", cfg.PageHandler.HealthCheck)

	pages := engine.Group("")
	pages.Use(cfg.GateMiddleware.Resolve(), cfg.GateMiddleware.GuardPage())
	for _, path := range PagePaths {
		pages.GET(path, cfg.PageHandler.Serve)
	}

	engine.NoRoute(cfg.PageHandler.NotFound)
}
