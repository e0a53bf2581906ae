package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
)

type BillingRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	InvoiceHandler *handlers.InvoiceHandler
}

func SetupBillingRoutes(api *gin.RouterGroup, cfg *BillingRouteConfig) {
	plans := api.Group("/plans")
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("", cfg.PlanHandler.ListPlans)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", cfg.InvoiceHandler.CreateInvoice)
		invoices.GET("", cfg.InvoiceHandler.ListInvoices)
		// Registered before /:id routes so the literal segment wins.
		invoices.GET("/suggested-amount", cfg.InvoiceHandler.SuggestAmount)
		invoices.PATCH("/:id/status", cfg.InvoiceHandler.UpdateInvoiceStatus)
	}
}
