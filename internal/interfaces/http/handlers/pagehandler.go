package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/utils"
	"ispdesk/internal/shared/version"
)

// PageHandler answers the dashboard page routes once the gate has let the
// navigation through. With a static directory configured it serves the
// single-page app shell; otherwise it describes the page as JSON.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// PageResponse describes a page route for API-only deployments.
type PageResponse struct {
	Page      string `json:"page"`
	Connected bool   `json:"connected"`
}

func (h *PageHandler) Serve(c *gin.Context) {
	if h.staticDir != "" {
		c.File(filepath.Join(h.staticDir, "index.html"))
		return
	}

	state, _ := c.Get(constants.ContextKeyGateState)
	gs, _ := state.(gate.State)

	utils.SuccessResponse(c, http.StatusOK, "", &PageResponse{
		Page:      c.Request.URL.Path,
		Connected: gs.Connected,
	})
}

// NotFound is the catch-all for unknown routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusNotFound, "Route not found")
}

func (h *PageHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":  "ok",
		"version": version.String(),
	})
}
