package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/database"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// fakeAdvisorClient records calls and returns a canned result or error
type fakeAdvisorClient struct {
	lastRequest *advisor.AdviceRequest
	result      *advisor.AdviceResult
	err         error
	calls       int
}

func (f *fakeAdvisorClient) GetAdvice(ctx context.Context, request *advisor.AdviceRequest) (*advisor.AdviceResult, error) {
	f.calls++
	f.lastRequest = request
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// noopMetrics satisfies MetricsRecorderInterface without touching the
// global prometheus registry
type noopMetrics struct{}

func (noopMetrics) IncrementRequestCount(method, path string, status int)      {}
func (noopMetrics) RecordRequestDuration(method, path string, d time.Duration) {}
func (noopMetrics) RecordAdviceCall(success bool)                              {}

// AdviceServiceSuite defines the test suite for AdviceService
type AdviceServiceSuite struct {
	suite.Suite
	db       *database.DB
	client   *fakeAdvisorClient
	service  AdviceServiceInterface
	testUser *models.User
	food     *models.Category
}

// SetupTest runs before each test in the suite
func (s *AdviceServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.client = &fakeAdvisorClient{
		result: &advisor.AdviceResult{
			Suggestions:     []advisor.Suggestion{{Category: "Food", Suggestion: "Cook at home"}},
			OverallAnalysis: "Spending looks stable",
		},
	}

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	budgetRepo := repositories.NewBudgetRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.service = NewAdviceService(s.client, transactionRepo, budgetRepo, categoryRepo, noopMetrics{}, logger)

	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, s.testUser, "Food")
}

// TearDownTest runs after each test in the suite
func (s *AdviceServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAdviceServiceSuite runs the test suite
func TestAdviceServiceSuite(t *testing.T) {
	suite.Run(t, new(AdviceServiceSuite))
}

func (s *AdviceServiceSuite) TestBlankGoalsNeverReachTheCollaborator() {
	_, err := s.service.GetAdvice(context.Background(), s.testUser.ID, "   ")
	s.ErrorIs(err, advisor.ErrEmptyGoals)
	s.Zero(s.client.calls, "collaborator must not be called for blank goals")
}

func (s *AdviceServiceSuite) TestDispatchesAssembledPayload() {
	budget := &models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.food.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2024-07",
	}
	s.Require().NoError(s.db.Create(budget).Error)

	expense := &models.Transaction{
		UserID:      s.testUser.ID,
		CategoryID:  s.food.ID,
		OccurredAt:  time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
		Amount:      decimal.NewFromInt(120),
	}
	s.Require().NoError(s.db.Create(expense).Error)

	result, err := s.service.GetAdvice(context.Background(), s.testUser.ID, "save for a house")
	s.Require().NoError(err)

	s.Equal("Spending looks stable", result.OverallAnalysis)
	s.Require().NotNil(s.client.lastRequest)
	s.Equal("save for a house", s.client.lastRequest.FinancialGoals)
	s.Require().Len(s.client.lastRequest.SpendingData, 1)
	s.Equal("Food", s.client.lastRequest.SpendingData[0].Category)
	s.True(s.client.lastRequest.SpendingData[0].Amount.Equal(decimal.NewFromInt(120)))
}

func (s *AdviceServiceSuite) TestCollaboratorFailurePassesThrough() {
	s.client.err = advisor.ErrAdviceUnavailable

	_, err := s.service.GetAdvice(context.Background(), s.testUser.ID, "retire early")
	s.ErrorIs(err, advisor.ErrAdviceUnavailable)
}
