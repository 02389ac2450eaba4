package dto

import (
	"budgetwise/internal/advisor"
)

// AdviceRequest contains the user's stated financial goals
type AdviceRequest struct {
	FinancialGoals string `json:"financialGoals" validate:"required"`
}

// SuggestionResponse is one category-level recommendation
type SuggestionResponse struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

// AdviceResponse contains the advisor's recommendations
type AdviceResponse struct {
	Suggestions     []SuggestionResponse `json:"suggestions"`
	OverallAnalysis string               `json:"overallAnalysis"`
}

// NewAdviceResponse maps an advisor result to its response shape
func NewAdviceResponse(result *advisor.AdviceResult) AdviceResponse {
	suggestions := make([]SuggestionResponse, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{
			Category:   s.Category,
			Suggestion: s.Suggestion,
		})
	}
	return AdviceResponse{
		Suggestions:     suggestions,
		OverallAnalysis: result.OverallAnalysis,
	}
}
