package insights

import (
	"budgetwise/internal/models"

	"github.com/google/uuid"
)

const progressCap = 100.0

// categoryLookup resolves category references. The two-value return makes
// the drop-orphans policy explicit at every call site instead of leaning on
// a nullable lookup with a string fallback.
type categoryLookup map[uuid.UUID]*models.Category

func newCategoryLookup(categories []models.Category) categoryLookup {
	lookup := make(categoryLookup, len(categories))
	for i := range categories {
		lookup[categories[i].ID] = &categories[i]
	}
	return lookup
}

func (l categoryLookup) resolve(id uuid.UUID) (*models.Category, bool) {
	category, ok := l[id]
	return category, ok
}

// BudgetProgress joins each budget for targetMonth against the spend
// aggregated for its category in that month.
//
// Budgets whose category does not resolve are dropped from the output
// entirely; a budget with no backing category is presumed orphaned
// deleted-category data, not something to render under a placeholder name.
// Duplicate budgets for the same (category, month) pair are processed
// independently, one entry per record. Output preserves the input budget
// ordering, and an empty month yields an empty slice, not an error.
func BudgetProgress(budgets []models.Budget, transactions []models.Transaction, categories []models.Category, targetMonth string) []ProgressEntry {
	lookup := newCategoryLookup(categories)
	entries := make([]ProgressEntry, 0, len(budgets))

	for i := range budgets {
		budget := &budgets[i]
		if budget.Month != targetMonth {
			continue
		}

		category, ok := lookup.resolve(budget.CategoryID)
		if !ok {
			continue
		}

		spent := AggregateSpend(transactions, budget.CategoryID, targetMonth)

		rawProgress := 0.0
		if budget.Amount.IsPositive() {
			rawProgress = spent.Div(budget.Amount).InexactFloat64() * 100
		}

		displayProgress := rawProgress
		if displayProgress > progressCap {
			displayProgress = progressCap
		}

		entries = append(entries, ProgressEntry{
			BudgetID:        budget.ID,
			CategoryName:    category.Name,
			Spent:           spent,
			Amount:          budget.Amount,
			DisplayProgress: displayProgress,
			IsOver:          rawProgress > progressCap,
		})
	}

	return entries
}
