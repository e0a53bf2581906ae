package handlers

import (
	"github.com/gin-gonic/gin"

	planuc "ispdesk/internal/application/plan/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC planuc.CreatePlanExecutor
	listPlansUC  planuc.ListPlansExecutor
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC planuc.CreatePlanExecutor,
	listPlansUC planuc.ListPlansExecutor,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		listPlansUC:  listPlansUC,
		logger:       logger,
	}
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var cmd planuc.CreatePlanCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context(), planuc.ListPlansQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}
