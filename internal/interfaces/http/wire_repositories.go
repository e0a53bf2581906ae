package http

import (
	"gorm.io/gorm"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/device"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/domain/report"
	"ispdesk/internal/domain/sequence"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	"ispdesk/internal/infrastructure/repository"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	clientRepo        client.Repository
	planRepo          plan.Repository
	invoiceRepo       invoice.Repository
	ticketRepo        ticket.TicketRepository
	ticketCommentRepo ticket.CommentRepository
	technicianRepo    technician.Repository
	inventoryRepo     inventory.Repository
	deviceRepo        device.Repository
	statsRepo         report.StatsRepository
	sequenceCounter   sequence.Counter
	txManager         *db.TransactionManager
}

func newRepositories(gormDB *gorm.DB, retry *db.Retrier, log logger.Interface) *repositories {
	return &repositories{
		clientRepo:        repository.NewClientRepository(gormDB, retry, log),
		planRepo:          repository.NewPlanRepository(gormDB, retry, log),
		invoiceRepo:       repository.NewInvoiceRepository(gormDB, retry, log),
		ticketRepo:        repository.NewTicketRepository(gormDB, retry, log),
		ticketCommentRepo: repository.NewTicketCommentRepository(gormDB, log),
		technicianRepo:    repository.NewTechnicianRepository(gormDB, retry, log),
		inventoryRepo:     repository.NewInventoryRepository(gormDB, retry, log),
		deviceRepo:        repository.NewDeviceRepository(gormDB, retry, log),
		statsRepo:         repository.NewStatsRepository(gormDB, retry, log),
		sequenceCounter:   repository.NewSequenceCounter(gormDB, log),
		txManager:         db.NewTransactionManager(gormDB, retry),
	}
}
