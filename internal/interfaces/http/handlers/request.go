package handlers

import (
	"github.com/gin-gonic/gin"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/utils"
)

// UpdateStatusRequest is the body of every PATCH .../:id/status endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// bindJSON decodes the request body into dst. Field rules are enforced by the
// use case, so only malformed JSON fails here.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}

// listQuery returns the free-text filter of a list request.
func listQuery(c *gin.Context) string {
	return c.Query("search")
}

func respondList[T any](c *gin.Context, result *commondto.ListResult[T]) {
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Count, result.Search)
}
