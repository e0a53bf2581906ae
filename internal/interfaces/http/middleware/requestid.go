package middleware

import (
	"github.com/gin-gonic/gin"

	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/id"
	"ispdesk/internal/shared/logger"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one. The id
// is also stored on the request context for logger.WithContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = id.New()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(constants.HeaderXRequestID, requestID)
		c.Next()
	}
}
