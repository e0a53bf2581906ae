package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	APIVersionPrefix = "/api/v1"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeySessionID = "gate_session_id"
	ContextKeyGateState = "gate_state"

	// Page routes
	LoginPath   = "/login"
	DefaultPath = "/"

	// Sequence names and display prefixes
	SequenceTickets  = "tickets"
	SequenceInvoices = "invoices"
	TicketPrefix     = "T"
	InvoicePrefix    = "INV"

	// Database table names
	TableClients        = "clients"
	TablePlans          = "plans"
	TableInvoices       = "invoices"
	TableTickets        = "tickets"
	TableTicketComments = "ticket_comments"
	TableTechnicians    = "technicians"
	TableInventory      = "inventory_items"
	TableNetworkDevices = "network_devices"
	TableSequences      = "sequences"
)
