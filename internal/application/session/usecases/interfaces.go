package usecases

import (
	"context"

	"ispdesk/internal/application/session/dto"
)

// TokenService issues and verifies the signed token that carries a gate
// session ID.
type TokenService interface {
	Issue(sessionID string) (token string, expiresIn int64, err error)
	Verify(token string) (sessionID string, err error)
}

// PasswordSealer encrypts the router password before it is persisted.
type PasswordSealer interface {
	Seal(plaintext string) (string, error)
}

type ConnectExecutor interface {
	Execute(ctx context.Context, cmd ConnectCommand) (*ConnectResult, error)
}

type DisconnectExecutor interface {
	Execute(ctx context.Context, cmd DisconnectCommand) error
}

type GetSessionStateExecutor interface {
	Execute(ctx context.Context, query GetSessionStateQuery) (*dto.SessionStateDTO, error)
}
