package dto

import (
	"budgetwise/internal/insights"
)

// OverviewResponse contains month-scoped totals for the dashboard header
type OverviewResponse struct {
	TotalSpending string `json:"totalSpending"`
	TotalBudget   string `json:"totalBudget"`
	Remaining     string `json:"remaining"`
}

// NewOverviewResponse maps engine overview totals to their response shape
func NewOverviewResponse(overview *insights.Overview) OverviewResponse {
	return OverviewResponse{
		TotalSpending: overview.TotalSpending.StringFixed(2),
		TotalBudget:   overview.TotalBudget.StringFixed(2),
		Remaining:     overview.Remaining.StringFixed(2),
	}
}

// BudgetProgressResponse represents one budget's progress for a month
type BudgetProgressResponse struct {
	BudgetID        string  `json:"budgetId"`
	CategoryName    string  `json:"categoryName"`
	Spent           string  `json:"spent"`
	Amount          string  `json:"amount"`
	DisplayProgress float64 `json:"displayProgress"`
	IsOver          bool    `json:"isOver"`
}

// NewBudgetProgressListResponse maps engine progress entries
func NewBudgetProgressListResponse(entries []insights.ProgressEntry) []BudgetProgressResponse {
	responses := make([]BudgetProgressResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, BudgetProgressResponse{
			BudgetID:        entry.BudgetID.String(),
			CategoryName:    entry.CategoryName,
			Spent:           entry.Spent.StringFixed(2),
			Amount:          entry.Amount.StringFixed(2),
			DisplayProgress: entry.DisplayProgress,
			IsOver:          entry.IsOver,
		})
	}
	return responses
}

// SpendingPointResponse is one day of the spending series. Spending is null
// for days with no recorded spend.
type SpendingPointResponse struct {
	Label    string  `json:"label"`
	Spending *string `json:"spending"`
}

// NewSpendingSeriesResponse maps engine series points
func NewSpendingSeriesResponse(points []insights.SpendingPoint) []SpendingPointResponse {
	responses := make([]SpendingPointResponse, 0, len(points))
	for _, point := range points {
		resp := SpendingPointResponse{Label: point.Label}
		if point.Spending != nil {
			value := point.Spending.StringFixed(2)
			resp.Spending = &value
		}
		responses = append(responses, resp)
	}
	return responses
}

// CategorySpendingResponse represents one category's all-history total
type CategorySpendingResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// NewCategorySpendingResponse maps engine category slices
func NewCategorySpendingResponse(slices []insights.CategorySlice) []CategorySpendingResponse {
	responses := make([]CategorySpendingResponse, 0, len(slices))
	for _, slice := range slices {
		responses = append(responses, CategorySpendingResponse{
			Name:  slice.Name,
			Value: slice.Value.StringFixed(2),
			Color: slice.Color,
		})
	}
	return responses
}
