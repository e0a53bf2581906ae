package usecases

import (
	"context"

	"ispdesk/internal/application/client/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateClientCommand struct {
	Name           string `json:"name" validate:"required,min=3,max=100"`
	DocumentType   string `json:"document_type" validate:"omitempty,oneof=DNI RUC CE Pasaporte"`
	DocumentNumber string `json:"document_number" validate:"required,min=5,max=20"`
	Address        string `json:"address" validate:"required,min=5,max=255"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	IPAddress      string `json:"ip_address" validate:"omitempty,ip"`
	MACAddress     string `json:"mac_address" validate:"omitempty,macaddr"`
	PlanID         string `json:"plan_id" validate:"omitempty,uuid"`
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "name", cmd.Name)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	documentType := client.DocumentDNI
	if cmd.DocumentType != "" {
		documentType = client.DocumentType(cmd.DocumentType)
	}

	planID := utils.NilIfEmpty(cmd.PlanID)
	if planID != nil {
		p, err := uc.planRepo.GetByID(ctx, *planID)
		if err != nil {
			uc.logger.WithContext(ctx).Errorw("failed to load plan", "error", err, "plan_id", *planID)
			return nil, errors.NewInternalError("failed to load plan")
		}
		if p == nil {
			return nil, errors.NewValidationError("Validation failed", "plan_id does not reference an existing plan")
		}
	}

	newClient, err := client.NewClient(
		cmd.Name,
		documentType,
		cmd.DocumentNumber,
		cmd.Address,
		cmd.Phone,
		client.Contact{
			Email:      utils.NilIfEmpty(cmd.Email),
			IPAddress:  utils.NilIfEmpty(cmd.IPAddress),
			MACAddress: utils.NilIfEmpty(cmd.MACAddress),
		},
		planID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Create(ctx, newClient); err != nil {
		uc.logger.Errorw("failed to create client", "error", err)
		return nil, errors.NewInternalError("failed to create client")
	}

	uc.logger.Infow("client created successfully", "client_id", newClient.ID())

	// Re-read so the response carries the joined plan.
	created, err := uc.clientRepo.GetByID(ctx, newClient.ID())
	if err != nil || created == nil {
		uc.logger.Warnw("failed to reload created client", "error", err, "client_id", newClient.ID())
		return dto.ToClientDTO(newClient), nil
	}
	return dto.ToClientDTO(created), nil
}
