package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/logger"
)

// Logger writes one line per request once the handler chain has finished.
// Server errors log at error level and client errors at warn. Everything else,
// including the frequent health probes, stays at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Route patterns keep ids out of the path field; unmatched requests
		// fall back to the raw path.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			kv = append(kv, "query", q)
		}
		if sessionID := c.GetString(constants.ContextKeySessionID); sessionID != "" {
			kv = append(kv, "session_id", sessionID)
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "error", c.Errors.String())
		}

		reqLog := log.WithContext(c.Request.Context())
		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Errorw("request failed", kv...)
		case status >= http.StatusBadRequest:
			reqLog.Warnw("request rejected", kv...)
		default:
			reqLog.Debugw("request handled", kv...)
		}
	}
}
