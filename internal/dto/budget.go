package dto

import (
	"time"

	"budgetwise/internal/models"
)

// CreateBudgetRequest contains data for setting a monthly budget
type CreateBudgetRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	Amount     string `json:"amount" validate:"required,positive_amount"`
	Month      string `json:"month" validate:"required,month_key"`
}

// UpdateBudgetRequest contains data for editing a monthly budget
type UpdateBudgetRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	Amount     string `json:"amount" validate:"required,positive_amount"`
	Month      string `json:"month" validate:"required,month_key"`
}

// BudgetResponse represents a monthly budget
type BudgetResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Amount     string    `json:"amount"`
	Month      string    `json:"month"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewBudgetResponse maps a budget model to its response shape
func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     budget.Amount.StringFixed(2),
		Month:      budget.Month,
		CreatedAt:  budget.CreatedAt,
	}
}

// NewBudgetListResponse maps a slice of budget models
func NewBudgetListResponse(budgets []models.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, NewBudgetResponse(&budgets[i]))
	}
	return responses
}
