package http

import (
	clientUsecases "ispdesk/internal/application/client/usecases"
	dashboardUsecases "ispdesk/internal/application/dashboard/usecases"
	deviceUsecases "ispdesk/internal/application/device/usecases"
	inventoryUsecases "ispdesk/internal/application/inventory/usecases"
	invoiceUsecases "ispdesk/internal/application/invoice/usecases"
	planUsecases "ispdesk/internal/application/plan/usecases"
	sessionUsecases "ispdesk/internal/application/session/usecases"
	technicianUsecases "ispdesk/internal/application/technician/usecases"
	ticketUsecases "ispdesk/internal/application/ticket/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Session gate
	connectUC    *sessionUsecases.ConnectUseCase
	disconnectUC *sessionUsecases.DisconnectUseCase
	getStateUC   *sessionUsecases.GetSessionStateUseCase

	// Clients
	createClientUC       *clientUsecases.CreateClientUseCase
	getClientUC          *clientUsecases.GetClientUseCase
	listClientsUC        *clientUsecases.ListClientsUseCase
	updateClientStatusUC *clientUsecases.UpdateClientStatusUseCase
	listClientOptionsUC  *clientUsecases.ListClientOptionsUseCase

	// Plans
	createPlanUC      *planUsecases.CreatePlanUseCase
	listPlansUC       *planUsecases.ListPlansUseCase
	listPlanOptionsUC *planUsecases.ListPlanOptionsUseCase

	// Invoices
	createInvoiceUC       *invoiceUsecases.CreateInvoiceUseCase
	listInvoicesUC        *invoiceUsecases.ListInvoicesUseCase
	updateInvoiceStatusUC *invoiceUsecases.UpdateInvoiceStatusUseCase
	suggestAmountUC       *invoiceUsecases.SuggestInvoiceAmountUseCase

	// Tickets
	createTicketUC       *ticketUsecases.CreateTicketUseCase
	listTicketsUC        *ticketUsecases.ListTicketsUseCase
	getTicketUC          *ticketUsecases.GetTicketUseCase
	updateTicketStatusUC *ticketUsecases.UpdateTicketStatusUseCase
	assignTechnicianUC   *ticketUsecases.AssignTechnicianUseCase
	addCommentUC         *ticketUsecases.AddCommentUseCase
	listCommentsUC       *ticketUsecases.ListCommentsUseCase

	// Technicians
	createTechnicianUC       *technicianUsecases.CreateTechnicianUseCase
	listTechniciansUC        *technicianUsecases.ListTechniciansUseCase
	updateTechnicianStatusUC *technicianUsecases.UpdateTechnicianStatusUseCase
	listAvailableTechsUC     *technicianUsecases.ListAvailableTechniciansUseCase

	// Inventory
	createItemUC       *inventoryUsecases.CreateItemUseCase
	listItemsUC        *inventoryUsecases.ListItemsUseCase
	updateItemStatusUC *inventoryUsecases.UpdateItemStatusUseCase

	// Network devices
	createDeviceUC       *deviceUsecases.CreateDeviceUseCase
	listDevicesUC        *deviceUsecases.ListDevicesUseCase
	updateDeviceStatusUC *deviceUsecases.UpdateDeviceStatusUseCase

	// Dashboard
	getStatsUC   *dashboardUsecases.GetStatsUseCase
	getNetworkUC *dashboardUsecases.GetNetworkUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		connectUC:    sessionUsecases.NewConnectUseCase(c.connector, c.gateStore, c.sealer, c.jwtSvc, c.cfg.Router.ConnectTimeout(), log),
		disconnectUC: sessionUsecases.NewDisconnectUseCase(c.gateStore, log),
		getStateUC:   sessionUsecases.NewGetSessionStateUseCase(c.gateStore, log),

		createClientUC:       clientUsecases.NewCreateClientUseCase(r.clientRepo, r.planRepo, log),
		getClientUC:          clientUsecases.NewGetClientUseCase(r.clientRepo, log),
		listClientsUC:        clientUsecases.NewListClientsUseCase(r.clientRepo, log),
		updateClientStatusUC: clientUsecases.NewUpdateClientStatusUseCase(r.clientRepo, log),
		listClientOptionsUC:  clientUsecases.NewListClientOptionsUseCase(r.clientRepo, log),

		createPlanUC:      planUsecases.NewCreatePlanUseCase(r.planRepo, log),
		listPlansUC:       planUsecases.NewListPlansUseCase(r.planRepo, log),
		listPlanOptionsUC: planUsecases.NewListPlanOptionsUseCase(r.planRepo, log),

		createInvoiceUC:       invoiceUsecases.NewCreateInvoiceUseCase(r.invoiceRepo, r.clientRepo, r.sequenceCounter, r.txManager, log),
		listInvoicesUC:        invoiceUsecases.NewListInvoicesUseCase(r.invoiceRepo, log),
		updateInvoiceStatusUC: invoiceUsecases.NewUpdateInvoiceStatusUseCase(r.invoiceRepo, log),
		suggestAmountUC:       invoiceUsecases.NewSuggestInvoiceAmountUseCase(r.clientRepo, log),

		createTicketUC:       ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.clientRepo, r.technicianRepo, r.sequenceCounter, r.txManager, log),
		listTicketsUC:        ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		getTicketUC:          ticketUsecases.NewGetTicketUseCase(r.ticketRepo, log),
		updateTicketStatusUC: ticketUsecases.NewUpdateTicketStatusUseCase(r.ticketRepo, log),
		assignTechnicianUC:   ticketUsecases.NewAssignTechnicianUseCase(r.ticketRepo, r.technicianRepo, log),
		addCommentUC:         ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.ticketCommentRepo, log),
		listCommentsUC:       ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.ticketCommentRepo, log),

		createTechnicianUC:       technicianUsecases.NewCreateTechnicianUseCase(r.technicianRepo, log),
		listTechniciansUC:        technicianUsecases.NewListTechniciansUseCase(r.technicianRepo, log),
		updateTechnicianStatusUC: technicianUsecases.NewUpdateTechnicianStatusUseCase(r.technicianRepo, log),
		listAvailableTechsUC:     technicianUsecases.NewListAvailableTechniciansUseCase(r.technicianRepo, log),

		createItemUC:       inventoryUsecases.NewCreateItemUseCase(r.inventoryRepo, r.clientRepo, log),
		listItemsUC:        inventoryUsecases.NewListItemsUseCase(r.inventoryRepo, log),
		updateItemStatusUC: inventoryUsecases.NewUpdateItemStatusUseCase(r.inventoryRepo, log),

		createDeviceUC:       deviceUsecases.NewCreateDeviceUseCase(r.deviceRepo, log),
		listDevicesUC:        deviceUsecases.NewListDevicesUseCase(r.deviceRepo, log),
		updateDeviceStatusUC: deviceUsecases.NewUpdateDeviceStatusUseCase(r.deviceRepo, log),

		getStatsUC:   dashboardUsecases.NewGetStatsUseCase(r.statsRepo, log),
		getNetworkUC: dashboardUsecases.NewGetNetworkUseCase(c.monitor),
	}
}
