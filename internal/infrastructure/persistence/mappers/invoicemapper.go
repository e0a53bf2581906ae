package mappers

import (
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

type InvoiceMapper interface {
	ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error)
	ToModel(entity *invoice.Invoice) *models.InvoiceModel
	ToEntities(models []*models.InvoiceModel) ([]*invoice.Invoice, error)
}

type invoiceMapper struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &invoiceMapper{}
}

func (m *invoiceMapper) ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error) {
	if model == nil {
		return nil, nil
	}
	return invoice.ReconstructInvoice(
		model.ID,
		model.InvoiceNumber,
		model.ClientID,
		model.Amount,
		invoice.Status(model.Status),
		model.DueDate,
		model.PaymentDate,
		model.CreatedAt,
		model.UpdatedAt,
		clientRef(model.Client),
	)
}

func (m *invoiceMapper) ToModel(entity *invoice.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:            entity.ID(),
		InvoiceNumber: entity.Number(),
		ClientID:      entity.ClientID(),
		Amount:        entity.Amount(),
		Status:        entity.Status().String(),
		DueDate:       entity.DueDate(),
		PaymentDate:   entity.PaymentDate(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *invoiceMapper) ToEntities(items []*models.InvoiceModel) ([]*invoice.Invoice, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
