package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboarduc "ispdesk/internal/application/dashboard/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// DashboardHandler serves the home and reports counters and the network panel.
type DashboardHandler struct {
	getStatsUC   dashboarduc.GetStatsExecutor
	getNetworkUC dashboarduc.GetNetworkExecutor
	logger       logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	getStatsUC dashboarduc.GetStatsExecutor,
	getNetworkUC dashboarduc.GetNetworkExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUC:   getStatsUC,
		getNetworkUC: getNetworkUC,
		logger:       logger,
	}
}

// GetStats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetNetwork handles GET /api/v1/dashboard/network
func (h *DashboardHandler) GetNetwork(c *gin.Context) {
	result, err := h.getNetworkUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
