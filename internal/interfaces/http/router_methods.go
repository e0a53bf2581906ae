package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/middleware"
	"ispdesk/internal/interfaces/http/routes"
	"ispdesk/internal/shared/constants"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.RequestTimeout(c.cfg.Server.RequestTimeout()))

	h := c.hdlrs

	routes.SetupPageRoutes(c.engine, &routes.PageRouteConfig{
		PageHandler:    h.pageHandler,
		GateMiddleware: c.gateMiddleware,
	})

	api := c.engine.Group(constants.APIVersionPrefix)

	routes.SetupSessionRoutes(api, &routes.SessionRouteConfig{
		SessionHandler:  h.sessionHandler,
		GateMiddleware:  c.gateMiddleware,
		ConnectThrottle: middleware.ConnectThrottle(c.connectLimiter, c.log.Named("gate")),
	})

	// Everything below requires a connected gate session.
	protected := api.Group("")
	protected.Use(c.gateMiddleware.Resolve(), c.gateMiddleware.RequireConnected())

	routes.SetupClientRoutes(protected, &routes.ClientRouteConfig{
		ClientHandler: h.clientHandler,
	})
	routes.SetupBillingRoutes(protected, &routes.BillingRouteConfig{
		PlanHandler:    h.planHandler,
		InvoiceHandler: h.invoiceHandler,
	})
	routes.SetupTicketRoutes(protected, &routes.TicketRouteConfig{
		TicketHandler:     h.ticketHandler,
		TechnicianHandler: h.technicianHandler,
	})
	routes.SetupAssetRoutes(protected, &routes.AssetRouteConfig{
		InventoryHandler: h.inventoryHandler,
		DeviceHandler:    h.deviceHandler,
	})
	routes.SetupDashboardRoutes(protected, &routes.DashboardRouteConfig{
		DashboardHandler: h.dashboardHandler,
		ReferenceHandler: h.referenceHandler,
	})
}

// GetEngine returns the gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// StartBackground starts the scheduled jobs. The router monitor samples once
// immediately, so the dashboard has data before the first interval elapses.
func (c *Container) StartBackground() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and releases Redis. The HTTP server must be
// drained before calling it; the database is closed by the caller.
func (c *Container) Shutdown() error {
	var errs []error

	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
			errs = append(errs, err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
