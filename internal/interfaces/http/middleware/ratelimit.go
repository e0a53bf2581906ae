package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/infrastructure/ratelimit"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// ConnectThrottle limits connect attempts per client IP. When the limiter
// itself fails the request is let through so a Redis outage cannot lock
// operators out of the gate.
func ConnectThrottle(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), "connect:"+clientIP)
		if err != nil {
			log.Warnw("connect rate limiter unavailable", "client_ip", clientIP, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("connect attempts throttled", "client_ip", clientIP)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many connection attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
