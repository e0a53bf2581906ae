package http

import (
	"ispdesk/internal/interfaces/http/handlers"
	ticketHandlers "ispdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	sessionHandler *handlers.SessionHandler
	pageHandler    *handlers.PageHandler

	clientHandler     *handlers.ClientHandler
	planHandler       *handlers.PlanHandler
	invoiceHandler    *handlers.InvoiceHandler
	ticketHandler     *ticketHandlers.TicketHandler
	technicianHandler *handlers.TechnicianHandler
	inventoryHandler  *handlers.InventoryHandler
	deviceHandler     *handlers.DeviceHandler

	dashboardHandler *handlers.DashboardHandler
	referenceHandler *handlers.ReferenceHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		sessionHandler: handlers.NewSessionHandler(u.connectUC, u.disconnectUC, u.getStateUC, c.cfg.Session.Cookie, log),
		pageHandler:    handlers.NewPageHandler(c.cfg.Server.StaticDir),

		clientHandler:     handlers.NewClientHandler(u.createClientUC, u.getClientUC, u.listClientsUC, u.updateClientStatusUC, log),
		planHandler:       handlers.NewPlanHandler(u.createPlanUC, u.listPlansUC, log),
		invoiceHandler:    handlers.NewInvoiceHandler(u.createInvoiceUC, u.listInvoicesUC, u.updateInvoiceStatusUC, u.suggestAmountUC, log),
		technicianHandler: handlers.NewTechnicianHandler(u.createTechnicianUC, u.listTechniciansUC, u.updateTechnicianStatusUC, log),
		inventoryHandler:  handlers.NewInventoryHandler(u.createItemUC, u.listItemsUC, u.updateItemStatusUC, log),
		deviceHandler:     handlers.NewDeviceHandler(u.createDeviceUC, u.listDevicesUC, u.updateDeviceStatusUC, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC,
			u.listTicketsUC,
			u.getTicketUC,
			u.updateTicketStatusUC,
			u.assignTechnicianUC,
			u.addCommentUC,
			u.listCommentsUC,
			log,
		),

		dashboardHandler: handlers.NewDashboardHandler(u.getStatsUC, u.getNetworkUC, log),
		referenceHandler: handlers.NewReferenceHandler(u.listPlanOptionsUC, u.listClientOptionsUC, u.listAvailableTechsUC, log),
	}
}
