package handlers

import (
	"net/http"

	"expense-capture/internal/errors"
	"expense-capture/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures through SendError (client and business errors) or
// SendSystemError (anything that must not leak internals). Never return echo.NewHTTPError
// or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendValidationError renders validator failures as "field: message" details
func sendValidationError(c echo.Context, err error) error {
	details := validation.FormatErrors(err)
	if details == nil {
		details = []string{err.Error()}
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
}
