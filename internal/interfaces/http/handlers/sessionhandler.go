package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessiondto "ispdesk/internal/application/session/dto"
	sessionuc "ispdesk/internal/application/session/usecases"
	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/config"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// SessionHandler drives the session gate: connect, disconnect and the
// current state.
type SessionHandler struct {
	connectUC    sessionuc.ConnectExecutor
	disconnectUC sessionuc.DisconnectExecutor
	getStateUC   sessionuc.GetSessionStateExecutor
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewSessionHandler(
	connectUC sessionuc.ConnectExecutor,
	disconnectUC sessionuc.DisconnectExecutor,
	getStateUC sessionuc.GetSessionStateExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *SessionHandler {
	return &SessionHandler{
		connectUC:    connectUC,
		disconnectUC: disconnectUC,
		getStateUC:   getStateUC,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// ConnectResponse carries the public gate state. Token is also returned for
// clients that send it as a bearer header instead of the cookie.
type ConnectResponse struct {
	State     *sessiondto.SessionStateDTO `json:"state"`
	Token     string                      `json:"token"`
	ExpiresIn int64                       `json:"expires_in"`
}

// Connect handles POST /api/v1/session/connect
func (h *SessionHandler) Connect(c *gin.Context) {
	var cmd sessionuc.ConnectCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for connect", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.SessionID = c.GetString(constants.ContextKeySessionID)

	result, err := h.connectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "Connected", &ConnectResponse{
		State:     result.State,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

// Disconnect handles POST /api/v1/session/disconnect. It succeeds for
// sessions that are already disconnected.
func (h *SessionHandler) Disconnect(c *gin.Context) {
	cmd := sessionuc.DisconnectCommand{SessionID: c.GetString(constants.ContextKeySessionID)}

	if err := h.disconnectUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "Disconnected", sessiondto.ToSessionStateDTO(gate.Disconnected()))
}

// GetState handles GET /api/v1/session
func (h *SessionHandler) GetState(c *gin.Context) {
	query := sessionuc.GetSessionStateQuery{SessionID: c.GetString(constants.ContextKeySessionID)}

	result, err := h.getStateUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
