package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/insights"
	"budgetwise/internal/models"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the derived spending views
type DashboardHandler struct {
	insightService services.InsightServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(insightService services.InsightServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		insightService: insightService,
	}
}

// Overview returns spend and budget totals for the current month
// @Summary Current month overview totals
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.OverviewResponse}
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	overview, err := h.insightService.GetOverview(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewOverviewResponse(overview),
	})
}

// BudgetProgress returns per-budget progress for a month. The month query
// parameter defaults to the current month.
// @Summary Per-budget progress entries
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month in YYYY-MM form"
// @Success 200 {object} SuccessResponse{data=[]dto.BudgetProgressResponse}
// @Router /dashboard/budget-progress [get]
func (h *DashboardHandler) BudgetProgress(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month := c.QueryParam("month")
	if month == "" {
		month = insights.MonthKey(time.Now())
	}

	entries, err := h.insightService.GetBudgetProgress(userID, month)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidMonthKey) {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBudgetProgressListResponse(entries),
	})
}

// SpendingSeries returns the daily spending series for the current month
// @Summary Daily spending series
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.SpendingPointResponse}
// @Router /dashboard/spending-series [get]
func (h *DashboardHandler) SpendingSeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	points, err := h.insightService.GetSpendingSeries(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSpendingSeriesResponse(points),
	})
}

// CategorySpending returns the all-history per-category totals
// @Summary All-history category spending breakdown
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.CategorySpendingResponse}
// @Router /dashboard/category-spending [get]
func (h *DashboardHandler) CategorySpending(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	slices, err := h.insightService.GetCategorySpending(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewCategorySpendingResponse(slices),
	})
}
