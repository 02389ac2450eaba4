package handlers

import (
	stderrors "errors"
	"net/http"

	"budgetwise/internal/advisor"
	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

// AdviceHandler serves personalized savings advice
type AdviceHandler struct {
	adviceService services.AdviceServiceInterface
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(adviceService services.AdviceServiceInterface) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
	}
}

// GetAdvice generates savings suggestions from the user's spending data
// @Summary Personalized savings advice
// @Tags Advice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AdviceRequest true "Financial goals"
// @Success 200 {object} SuccessResponse{data=dto.AdviceResponse}
// @Failure 400 {object} errors.ErrorResponse "Goals missing - ADVICE_001"
// @Failure 502 {object} errors.ErrorResponse "Advisor unavailable - ADVICE_002"
// @Router /advice [post]
func (h *AdviceHandler) GetAdvice(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AdviceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.adviceService.GetAdvice(c.Request().Context(), userID, req.FinancialGoals)
	if err != nil {
		if stderrors.Is(err, advisor.ErrEmptyGoals) {
			return SendError(c, errors.AdviceGoalsRequired)
		}
		if stderrors.Is(err, advisor.ErrAdviceUnavailable) {
			return SendError(c, errors.AdviceUnavailable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewAdviceResponse(result),
	})
}
