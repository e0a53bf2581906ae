package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/invoice/dto"
)

type CreateInvoiceExecutor interface {
	Execute(ctx context.Context, cmd CreateInvoiceCommand) (*dto.InvoiceDTO, error)
}

type ListInvoicesExecutor interface {
	Execute(ctx context.Context, query ListInvoicesQuery) (*commondto.ListResult[*dto.InvoiceDTO], error)
}

type UpdateInvoiceStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateInvoiceStatusCommand) (*dto.InvoiceDTO, error)
}

type SuggestInvoiceAmountExecutor interface {
	Execute(ctx context.Context, clientID string) (*dto.SuggestedAmountDTO, error)
}
