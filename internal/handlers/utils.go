package handlers

import (
	"context"
	"strings"

	"expense-capture/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestContext carries the trace id into service logs as the correlation id
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if traceID := getTraceID(c); traceID != "" {
		ctx = services.WithCorrelationID(ctx, traceID)
	}
	return ctx
}

// parseUserID accepts only non-nil UUIDs
func parseUserID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
