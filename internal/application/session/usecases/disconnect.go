package usecases

import (
	"context"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
)

type DisconnectCommand struct {
	SessionID string
}

// DisconnectUseCase clears the gate state. Disconnecting a session that is
// unknown or already disconnected succeeds.
type DisconnectUseCase struct {
	store  gate.Store
	logger logger.Interface
}

func NewDisconnectUseCase(store gate.Store, logger logger.Interface) *DisconnectUseCase {
	return &DisconnectUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *DisconnectUseCase) Execute(ctx context.Context, cmd DisconnectCommand) error {
	if cmd.SessionID == "" {
		return nil
	}

	if err := uc.store.Clear(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to clear gate state", "error", err, "session_id", cmd.SessionID)
		return errors.NewInternalError("failed to clear session")
	}

	uc.logger.Infow("gate disconnected", "session_id", cmd.SessionID)
	return nil
}
