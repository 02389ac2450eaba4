package insights

import (
	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateSpend sums the amounts of all transactions in the given category.
// If monthFilter is non-empty it is a "YYYY-MM" month key and only
// transactions within that calendar month are counted. An empty result sums
// to zero. The input is not mutated and amounts are accumulated in input
// order so rounding behavior is reproducible.
func AggregateSpend(transactions []models.Transaction, categoryID uuid.UUID, monthFilter string) decimal.Decimal {
	total := decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if txn.CategoryID != categoryID {
			continue
		}
		if monthFilter != "" && MonthKey(txn.OccurredAt) != monthFilter {
			continue
		}
		total = total.Add(txn.Amount)
	}

	return total
}
