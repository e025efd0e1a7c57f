package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders sets the hardening headers. Audio under audioPrefix may be cached and
// played back; everything else is no-store.
func SecurityHeaders(audioPrefix string) echo.MiddlewareFunc {
	audioPrefix = "/" + strings.Trim(audioPrefix, "/") + "/"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), camera=()")

			if strings.HasPrefix(c.Request().URL.Path, audioPrefix) {
				h.Set("Content-Security-Policy", "default-src 'none'; media-src 'self'")
				h.Set("Cache-Control", "private, max-age=86400")
			} else {
				h.Set("Content-Security-Policy", "default-src 'self'")
				h.Set("Cache-Control", "no-store")
			}

			return next(c)
		}
	}
}
