package insights

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressEntry is the month-scoped budget progress for one budget record.
// Spent and Amount are retained uncapped; DisplayProgress is capped at 100
// for presentation while IsOver reflects the uncapped ratio.
type ProgressEntry struct {
	BudgetID        uuid.UUID       `json:"budget_id"`
	CategoryName    string          `json:"category_name"`
	Spent           decimal.Decimal `json:"spent"`
	Amount          decimal.Decimal `json:"amount"`
	DisplayProgress float64         `json:"display_progress"`
	IsOver          bool            `json:"is_over"`
}

// SpendingPoint is one day of the daily spending series. Spending is nil,
// not zero, for days with no matching transactions so chart renderers can
// gap the point instead of plotting zero.
type SpendingPoint struct {
	Label    string           `json:"label"`
	Spending *decimal.Decimal `json:"spending"`
}

// Overview contains aggregate totals across a transaction/budget snapshot.
// Remaining may be negative, which signals overspend and is a valid result.
type Overview struct {
	TotalSpending decimal.Decimal `json:"total_spending"`
	TotalBudget   decimal.Decimal `json:"total_budget"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// CategorySlice is a per-category spending total with its display color,
// used for the category breakdown chart.
type CategorySlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}
