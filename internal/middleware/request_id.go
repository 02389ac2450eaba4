package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on both request and response.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key the trace ID is stored under.
	TraceIDContextKey = "trace_id"

	// maxInboundTraceIDLength bounds caller-supplied trace IDs; anything
	// longer is discarded and replaced with a generated one.
	maxInboundTraceIDLength = 64
)

// RequestID tags every request with a trace ID. An inbound X-Trace-ID is
// honored so callers can correlate requests across services; blank or
// oversized values are replaced with a fresh UUID. The ID is stored on the
// context for handlers and echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := strings.TrimSpace(c.Request().Header.Get(TraceIDHeader))
			if traceID == "" || len(traceID) > maxInboundTraceIDLength {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID set by RequestID, or "" when absent.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
