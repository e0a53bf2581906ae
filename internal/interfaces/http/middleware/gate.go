package middleware

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// TokenVerifier resolves a signed session token to its session ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type GateMiddleware struct {
	tokens     TokenVerifier
	store      gate.Store
	cookieName string
	logger     logger.Interface
}

func NewGateMiddleware(tokens TokenVerifier, store gate.Store, cookieName string, logger logger.Interface) *GateMiddleware {
	return &GateMiddleware{
		tokens:     tokens,
		store:      store,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Resolve loads the gate state of the calling session into the context. It
// never aborts: a missing or invalid token, or a store failure, resolves to the
// disconnected state.
func (m *GateMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := gate.Disconnected()

		if token := utils.GetSessionToken(c, m.cookieName); token != "" {
			sessionID, err := m.tokens.Verify(token)
			if err != nil {
				m.logger.Debugw("ignoring invalid session token", "error", err)
			} else {
				c.Set(constants.ContextKeySessionID, sessionID)

				loaded, err := m.store.Load(c.Request.Context(), sessionID)
				if err != nil {
					m.logger.Errorw("failed to load gate state", "session_id", sessionID, "error", err)
				} else {
					state = loaded
				}
			}
		}

		c.Set(constants.ContextKeyGateState, state)
		c.Next()
	}
}

// RequireConnected rejects API requests from sessions that are not connected.
// It must run after Resolve.
func (m *GateMiddleware) RequireConnected() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isConnected(c) {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Not connected", "connect to a device first"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GuardPage redirects page requests to where the gate allows them to land. It
// must run after Resolve and only reads state.
func (m *GateMiddleware) GuardPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if target, redirect := gate.Decide(isConnected(c), c.Request.URL.Path); redirect {
			utils.RedirectResponse(c, target)
			return
		}
		c.Next()
	}
}

func isConnected(c *gin.Context) bool {
	value, exists := c.Get(constants.ContextKeyGateState)
	if !exists {
		return false
	}
	state, ok := value.(gate.State)
	return ok && state.Connected
}
