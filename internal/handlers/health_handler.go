package handlers

import (
	"net/http"
	"time"

	"budgetwise/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness and readiness checks
type HealthHandler struct {
	db        *database.DB
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

// Health reports service and database status
func (h *HealthHandler) Health(c echo.Context) error {
	status := "ok"
	dbStatus := "ok"
	httpStatus := http.StatusOK

	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, map[string]interface{}{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.startedAt).String(),
	})
}
