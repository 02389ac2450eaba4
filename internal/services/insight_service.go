package services

import (
	"fmt"
	"time"

	"budgetwise/internal/insights"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

// InsightService loads a user's stored snapshot and runs the aggregation
// engine over it. All derivation logic lives in the insights package; this
// service only fetches and filters inputs.
type InsightService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewInsightService creates a new insight service
func NewInsightService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) InsightServiceInterface {
	return &InsightService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
	}
}

// GetOverview computes spend and budget totals scoped to the month of now
func (s *InsightService) GetOverview(userID uuid.UUID, now time.Time) (*insights.Overview, error) {
	month := insights.MonthKey(now)

	transactions, err := s.transactionRepo.GetByUserIDAndMonth(userID, month)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUserIDAndMonth(userID, month)
	if err != nil {
		return nil, err
	}

	overview := insights.OverviewTotals(transactions, budgets)
	return &overview, nil
}

// GetBudgetProgress computes per-budget progress entries for a target month
func (s *InsightService) GetBudgetProgress(userID uuid.UUID, targetMonth string) ([]insights.ProgressEntry, error) {
	if !models.IsValidMonthKey(targetMonth) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMonthKey, targetMonth)
	}

	budgets, err := s.budgetRepo.GetByUserIDAndMonth(userID, targetMonth)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByUserIDAndMonth(userID, targetMonth)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	return insights.BudgetProgress(budgets, transactions, categories, targetMonth), nil
}

// GetSpendingSeries computes the daily spending series for the month of now
func (s *InsightService) GetSpendingSeries(userID uuid.UUID, now time.Time) ([]insights.SpendingPoint, error) {
	transactions, err := s.transactionRepo.GetByUserIDAndMonth(userID, insights.MonthKey(now))
	if err != nil {
		return nil, err
	}

	return insights.DailySpendingSeries(transactions, now, now), nil
}

// GetCategorySpending computes the all-history per-category breakdown
func (s *InsightService) GetCategorySpending(userID uuid.UUID) ([]insights.CategorySlice, error) {
	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	return insights.CategorySpending(transactions, categories), nil
}
