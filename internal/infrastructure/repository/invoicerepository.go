package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.InvoiceMapper
	logger logger.Interface
}

func NewInvoiceRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) invoice.Repository {
	return &InvoiceRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewInvoiceMapper(),
		logger: logger,
	}
}

// Create inserts the invoice, joining the caller's transaction when there is one.
func (r *InvoiceRepositoryImpl) Create(ctx context.Context, inv *invoice.Invoice) error {
	model := r.mapper.ToModel(inv)

	if err := db.GetTxFromContext(ctx, r.db).Omit("Client").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create invoice", "error", err, "invoice_number", inv.Number())
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	r.logger.Infow("invoice created successfully", "invoice_id", model.ID, "invoice_number", model.InvoiceNumber)
	return nil
}

func (r *InvoiceRepositoryImpl) GetByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Joins("Client").
			Where("invoices.id = ?", id).
			First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get invoice by ID", "error", err, "invoice_id", id)
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepositoryImpl) List(ctx context.Context) ([]*invoice.Invoice, error) {
	var invoiceModels []*models.InvoiceModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		invoiceModels = nil
		return db.GetTxFromContext(ctx, r.db).
			Joins("Client").
			Order("invoices.due_date DESC").
			Find(&invoiceModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list invoices", "error", err)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return r.mapper.ToEntities(invoiceModels)
}

func (r *InvoiceRepositoryImpl) UpdateStatus(ctx context.Context, inv *invoice.Invoice) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.InvoiceModel{}).
			Where("id = ?", inv.ID()).
			Updates(map[string]interface{}{
				"status":       inv.Status().String(),
				"payment_date": inv.PaymentDate(),
				"updated_at":   inv.UpdatedAt(),
			}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update invoice status", "error", err, "invoice_id", inv.ID())
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	r.logger.Infow("invoice status updated", "invoice_id", inv.ID(), "status", inv.Status())
	return nil
}
