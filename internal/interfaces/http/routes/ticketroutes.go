package routes

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/interfaces/http/handlers"
	tickethandlers "ispdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	TechnicianHandler *handlers.TechnicianHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		tickets.PATCH("/:id/status",
			config.TicketHandler.UpdateTicketStatus)
		tickets.PATCH("/:id/technician",
			config.TicketHandler.AssignTechnician)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/comments",
			config.TicketHandler.ListComments)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
	}

	technicians := api.Group("/technicians")
	{
		technicians.POST("", config.TechnicianHandler.CreateTechnician)
		technicians.GET("", config.TechnicianHandler.ListTechnicians)
		technicians.PATCH("/:id/status", config.TechnicianHandler.UpdateTechnicianStatus)
	}
}
