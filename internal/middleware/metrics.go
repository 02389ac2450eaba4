package middleware

import (
	"time"

	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latency per route
func Metrics(recorder services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			path := c.Path()
			recorder.IncrementRequestCount(method, path, c.Response().Status)
			recorder.RecordRequestDuration(method, path, time.Since(start))

			return err
		}
	}
}
