package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/invoice/dto"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
)

type ListInvoicesQuery struct {
	Search string
}

type ListInvoicesUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewListInvoicesUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*commondto.ListResult[*dto.InvoiceDTO], error) {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load invoices", "error", err)
		return nil, errors.NewInternalError("failed to load invoices")
	}
	return commondto.NewListResult(invoices, query.Search, dto.SearchFields, dto.ToInvoiceDTO), nil
}
