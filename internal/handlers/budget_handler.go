package handlers

import (
	stderrors "errors"
	"net/http"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles monthly budget endpoints
type BudgetHandler struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// List returns the user's budgets, optionally filtered to one month via the
// month query parameter.
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	month := c.QueryParam("month")

	var budgets []models.Budget
	if month != "" {
		if !models.IsValidMonthKey(month) {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		budgets, err = h.budgetRepo.GetByUserIDAndMonth(userID, month)
	} else {
		budgets, err = h.budgetRepo.GetByUserID(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBudgetListResponse(budgets),
	})
}

// Create sets a monthly budget for a category
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, errCode := h.buildBudget(userID, req.CategoryID, req.Amount, req.Month)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewBudgetResponse(budget),
		Message: "Budget created successfully",
	})
}

// Update edits an existing budget
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	existing, err := h.budgetRepo.GetByID(budgetID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}
	if existing.UserID != userID {
		return SendError(c, errors.BudgetNotFound)
	}

	updated, errCode := h.buildBudget(userID, req.CategoryID, req.Amount, req.Month)
	if errCode != "" {
		return SendError(c, errCode)
	}

	existing.CategoryID = updated.CategoryID
	existing.Amount = updated.Amount
	existing.Month = updated.Month

	if err := h.budgetRepo.Update(existing); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewBudgetResponse(existing),
		Message: "Budget updated successfully",
	})
}

// Delete removes a budget
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	existing, err := h.budgetRepo.GetByID(budgetID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}
	if existing.UserID != userID {
		return SendError(c, errors.BudgetNotFound)
	}

	if err := h.budgetRepo.Delete(budgetID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted successfully",
	})
}

// buildBudget validates the category reference, amount and month and
// assembles a budget model. The returned error code is empty on success.
func (h *BudgetHandler) buildBudget(userID uuid.UUID, rawCategoryID, rawAmount, month string) (*models.Budget, errors.ErrorCode) {
	categoryID, err := uuid.Parse(rawCategoryID)
	if err != nil {
		return nil, errors.ValidationInvalidFormat
	}

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil || category.UserID != userID {
		return nil, errors.CategoryNotFound
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amount.IsPositive() {
		return nil, errors.BudgetInvalidAmount
	}

	if !models.IsValidMonthKey(month) {
		return nil, errors.BudgetInvalidMonth
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
	}

	if err := budget.Validate(); err != nil {
		return nil, errors.ValidationGeneral
	}

	return budget, ""
}
