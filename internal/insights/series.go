package insights

import (
	"time"

	"budgetwise/internal/models"

	"github.com/shopspring/decimal"
)

// DailySpendingSeries builds a per-day spending series for the calendar
// month of reference, one point per day in ascending order. Iteration stops
// before the first day strictly after now, so the series never shows future
// days; for a fully past month every day is emitted. Days with no matching
// spend carry a nil Spending value, not zero.
//
// The now parameter is the real-world cutoff; callers pass time.Now().
func DailySpendingSeries(transactions []models.Transaction, reference, now time.Time) []SpendingPoint {
	year, month := reference.Year(), reference.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, reference.Location()).Day()

	points := make([]SpendingPoint, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, reference.Location())
		if date.After(now) {
			break
		}

		daily := sumForDay(transactions, year, month, day)

		point := SpendingPoint{Label: date.Format("Jan 2")}
		if daily.IsPositive() {
			spending := daily
			point.Spending = &spending
		}
		points = append(points, point)
	}

	return points
}

func sumForDay(transactions []models.Transaction, year int, month time.Month, day int) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		txn := &transactions[i]
		if txn.OccurredAt.Day() != day || txn.OccurredAt.Month() != month || txn.OccurredAt.Year() != year {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}
