package usecases

import (
	"context"

	"ispdesk/internal/application/session/dto"
	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
)

type GetSessionStateQuery struct {
	SessionID string
}

type GetSessionStateUseCase struct {
	store  gate.Store
	logger logger.Interface
}

func NewGetSessionStateUseCase(store gate.Store, logger logger.Interface) *GetSessionStateUseCase {
	return &GetSessionStateUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *GetSessionStateUseCase) Execute(ctx context.Context, query GetSessionStateQuery) (*dto.SessionStateDTO, error) {
	if query.SessionID == "" {
		return dto.ToSessionStateDTO(gate.Disconnected()), nil
	}

	state, err := uc.store.Load(ctx, query.SessionID)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load gate state", "error", err, "session_id", query.SessionID)
		return nil, errors.NewInternalError("failed to load session")
	}
	return dto.ToSessionStateDTO(state), nil
}
