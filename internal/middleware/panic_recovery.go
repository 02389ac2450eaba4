package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"budgetwise/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a sanitized SYSTEM_001 response.
// The panic value and stack stay in the log, keyed by trace ID.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = respondToPanic(c, r)
				}
			}()
			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, recovered interface{}) error {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"stack_trace", string(debug.Stack()),
	)

	response, _ := errors.WrapSystemError(fmt.Errorf("panic: %v", recovered), traceID)
	if sendErr := c.JSON(http.StatusInternalServerError, response); sendErr != nil {
		slog.Error("Failed to send panic recovery response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
	return nil
}
