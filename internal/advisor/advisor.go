package advisor

import (
	"errors"
	"strings"

	"budgetwise/internal/insights"
	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyGoals is returned when the financial goals text is blank;
	// a request is never dispatched with an empty goals field.
	ErrEmptyGoals = errors.New("financial goals are required")

	// ErrAdviceUnavailable is the single generic failure surfaced when the
	// advice collaborator is unreachable or returns a malformed shape. No
	// partial or degraded advice is fabricated locally.
	ErrAdviceUnavailable = errors.New("advice generation is unavailable")
)

// SpendingEntry is one row of the structured payload sent to the advice
// collaborator: a category label with its all-history spend and its budget.
type SpendingEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Budget   decimal.Decimal `json:"budget"`
}

// AdviceRequest is the payload consumed by the advice collaborator.
type AdviceRequest struct {
	SpendingData   []SpendingEntry `json:"spending_data"`
	FinancialGoals string          `json:"financial_goals"`
}

// Suggestion is one per-category budget adjustment from the collaborator.
type Suggestion struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

// AdviceResult is the collaborator's structured response. Only its shape is
// validated; the content of the text is opaque and non-deterministic.
type AdviceResult struct {
	Suggestions     []Suggestion `json:"suggestions"`
	OverallAnalysis string       `json:"overall_analysis"`
}

// BuildAdvisoryInput transforms budgets and transactions into the advice
// request payload. Spend per budget reflects all available history (no month
// filter), the category label is the resolved category name, and budgets
// whose category does not resolve are dropped. Blank or whitespace-only
// goals fail with ErrEmptyGoals before any external call is made.
func BuildAdvisoryInput(budgets []models.Budget, transactions []models.Transaction, categories []models.Category, financialGoals string) (*AdviceRequest, error) {
	if strings.TrimSpace(financialGoals) == "" {
		return nil, ErrEmptyGoals
	}

	names := make(map[uuid.UUID]string, len(categories))
	for i := range categories {
		names[categories[i].ID] = categories[i].Name
	}

	entries := make([]SpendingEntry, 0, len(budgets))
	for i := range budgets {
		budget := &budgets[i]
		name, ok := names[budget.CategoryID]
		if !ok {
			continue
		}
		entries = append(entries, SpendingEntry{
			Category: name,
			Amount:   insights.AggregateSpend(transactions, budget.CategoryID, ""),
			Budget:   budget.Amount,
		})
	}

	return &AdviceRequest{
		SpendingData:   entries,
		FinancialGoals: financialGoals,
	}, nil
}
