package services

import (
	"context"
	"log/slog"

	"budgetwise/internal/advisor"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

// AdviceService assembles the advisory payload from a user's stored data and
// forwards it to the external advisor.
type AdviceService struct {
	client          advisor.ClientInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAdviceService creates a new advice service
func NewAdviceService(
	client advisor.ClientInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AdviceServiceInterface {
	return &AdviceService{
		client:          client,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetAdvice builds the advisory input and dispatches it. Goals are checked
// before any collaborator call is made.
func (s *AdviceService) GetAdvice(ctx context.Context, userID uuid.UUID, financialGoals string) (*advisor.AdviceResult, error) {
	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	request, err := advisor.BuildAdvisoryInput(budgets, transactions, categories, financialGoals)
	if err != nil {
		return nil, err
	}

	result, err := s.client.GetAdvice(ctx, request)
	if err != nil {
		s.metrics.RecordAdviceCall(false)
		s.logger.Error("advice request failed",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	s.metrics.RecordAdviceCall(true)
	return result, nil
}
