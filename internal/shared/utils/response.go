package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/shared/errors"
)

const internalErrorMessage = "Internal server error occurred"

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is a filtered snapshot of a collection.
// Total counts the loaded rows, Count the rows left after the search filter,
// so an empty result can be told apart from an empty collection.
type ListResponse struct {
	Items  interface{} `json:"items"`
	Total  int         `json:"total"`
	Count  int         `json:"count"`
	Search string      `json:"search,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

func CreatedResponse(c *gin.Context, data interface{}, message string) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

func ListSuccessResponse(c *gin.Context, items interface{}, total, count int, search string) {
	SuccessResponse(c, http.StatusOK, "", ListResponse{
		Items:  items,
		Total:  total,
		Count:  count,
		Search: search,
	})
}

// ErrorResponse answers with a plain error for failures raised outside the
// use cases, such as rate limiting or unknown routes.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	writeError(c, statusCode, ErrorInfo{Type: "error", Message: message})
}

// ErrorResponseWithError renders err with the status its AppError carries.
// Anything else becomes a generic 500 so driver messages never reach clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		writeError(c, http.StatusInternalServerError, ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: internalErrorMessage,
		})
		return
	}
	writeError(c, appErr.Code, ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func writeError(c *gin.Context, statusCode int, info ErrorInfo) {
	c.JSON(statusCode, APIResponse{Error: &info})
}

// RedirectResponse sends a page route elsewhere and stops the chain.
func RedirectResponse(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
