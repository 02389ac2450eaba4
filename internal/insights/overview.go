package insights

import (
	"budgetwise/internal/models"

	"github.com/shopspring/decimal"
)

// OverviewTotals computes aggregate totals over the full supplied snapshot.
// No month filter is applied here; scoping to the current month is the
// caller's responsibility via pre-filtering its input. Remaining may be
// negative, signaling overspend.
func OverviewTotals(transactions []models.Transaction, budgets []models.Budget) Overview {
	totalSpending := decimal.Zero
	for i := range transactions {
		totalSpending = totalSpending.Add(transactions[i].Amount)
	}

	totalBudget := decimal.Zero
	for i := range budgets {
		totalBudget = totalBudget.Add(budgets[i].Amount)
	}

	return Overview{
		TotalSpending: totalSpending,
		TotalBudget:   totalBudget,
		Remaining:     totalBudget.Sub(totalSpending),
	}
}

// CategorySpending totals all-history spend per category for the breakdown
// chart. Categories with zero spend are omitted, and output follows the
// input category ordering.
func CategorySpending(transactions []models.Transaction, categories []models.Category) []CategorySlice {
	slices := make([]CategorySlice, 0, len(categories))

	for i := range categories {
		category := &categories[i]
		total := AggregateSpend(transactions, category.ID, "")
		if !total.IsPositive() {
			continue
		}
		slices = append(slices, CategorySlice{
			Name:  category.Name,
			Value: total,
			Color: category.Color,
		})
	}

	return slices
}
