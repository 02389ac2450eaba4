package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
