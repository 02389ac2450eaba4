package handlers

import (
	"net/http"
	"time"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

// SampleDataHandler seeds fake expenses. Only registered in development.
type SampleDataHandler struct {
	sampleDataService services.SampleDataServiceInterface
}

// NewSampleDataHandler creates a new sample data handler
func NewSampleDataHandler(sampleDataService services.SampleDataServiceInterface) *SampleDataHandler {
	return &SampleDataHandler{
		sampleDataService: sampleDataService,
	}
}

// Generate creates fake transactions for the authenticated user. The count
// query parameter defaults to 50 and is capped at 500.
func (h *SampleDataHandler) Generate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", 50)
	if count > 500 {
		count = 500
	}

	transactions, err := h.sampleDataService.GenerateSampleTransactions(userID, time.Now(), count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewTransactionListResponse(transactions),
		Message: "Sample transactions generated",
	})
}
