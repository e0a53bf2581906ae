package middleware

import (
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// redactedHeaders carry the session token and must never reach the logs.
var redactedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
}

func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if checkBrokenConnection(recovered) {
			log.Errorw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", redactRequest(c.Request),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, errors.New("panic recovered"))
		c.Abort()
	})
}

func redactRequest(r *http.Request) []string {
	dump, _ := httputil.DumpRequest(r, false)
	headers := strings.Split(string(dump), "\r\n")
	for idx, header := range headers {
		name, _, found := strings.Cut(header, ":")
		if !found {
			continue
		}
		if _, secret := redactedHeaders[strings.ToLower(name)]; secret {
			headers[idx] = name + ": *"
		}
	}
	return headers
}

// checkBrokenConnection checks if the error is a broken connection
func checkBrokenConnection(err interface{}) bool {
	brokenConnections := []string{
		"connection reset by peer",
		"broken pipe",
	}

	e, ok := err.(error)
	if !ok {
		return false
	}

	var ne *net.OpError
	if !errors.As(e, &ne) {
		return false
	}

	var se *os.SyscallError
	if errors.As(ne.Err, &se) {
		errStr := strings.ToLower(se.Error())
		for _, s := range brokenConnections {
			if strings.Contains(errStr, s) {
				return true
			}
		}
	}
	return false
}

// ErrorHandler renders errors attached with c.Error when the handler did not
// write a response itself.
func ErrorHandler(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Errorw("handler error occurred",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)

		if !c.Writer.Written() {
			utils.ErrorResponseWithError(c, err)
		}
	}
}
