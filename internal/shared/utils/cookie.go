package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/shared/config"
)

// persistentCookieMaxAge keeps the session cookie across browser restarts when
// sessions have no configured expiry (one year, in seconds).
const persistentCookieMaxAge = 365 * 24 * 60 * 60

// SetSessionCookie stores the gate session token as an HttpOnly cookie
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	if maxAge <= 0 {
		maxAge = persistentCookieMaxAge
	}

	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie expires the gate session cookie
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetSessionToken retrieves the session token from the cookie, falling back to
// an "Authorization: Bearer" header for non-browser clients.
func GetSessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
