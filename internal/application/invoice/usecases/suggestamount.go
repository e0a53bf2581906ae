package usecases

import (
	"context"

	"ispdesk/internal/application/invoice/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// SuggestInvoiceAmountUseCase derives the default amount of a new invoice
// from the price of the selected client's plan.
type SuggestInvoiceAmountUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewSuggestInvoiceAmountUseCase(clientRepo client.Repository, logger logger.Interface) *SuggestInvoiceAmountUseCase {
	return &SuggestInvoiceAmountUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *SuggestInvoiceAmountUseCase) Execute(ctx context.Context, clientID string) (*dto.SuggestedAmountDTO, error) {
	if err := utils.ValidateID(clientID); err != nil {
		return nil, err
	}

	c, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", clientID)
		return nil, errors.NewInternalError("failed to get client")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("client not found", clientID)
	}

	result := &dto.SuggestedAmountDTO{ClientID: clientID}
	if p := c.Plan(); p != nil {
		price := p.Price
		result.Amount = &price
	}
	return result, nil
}
