package advisor

import (
	"testing"
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BuildAdvisoryInputSuite defines the test suite for advisory input assembly
type BuildAdvisoryInputSuite struct {
	suite.Suite
	userID     uuid.UUID
	food       models.Category
	categories []models.Category
}

func (s *BuildAdvisoryInputSuite) SetupTest() {
	s.userID = uuid.New()
	s.food = models.Category{ID: uuid.New(), UserID: s.userID, Name: "Food", Color: "#22c55e"}
	s.categories = []models.Category{s.food}
}

func TestBuildAdvisoryInputSuite(t *testing.T) {
	suite.Run(t, new(BuildAdvisoryInputSuite))
}

func (s *BuildAdvisoryInputSuite) budget(categoryID uuid.UUID, amount string) models.Budget {
	return models.Budget{
		ID:         uuid.New(),
		UserID:     s.userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Month:      "2024-07",
	}
}

func (s *BuildAdvisoryInputSuite) TestBlankGoalsRejectedBeforeAssembly() {
	_, err := BuildAdvisoryInput(nil, nil, nil, "")
	s.ErrorIs(err, ErrEmptyGoals)

	_, err = BuildAdvisoryInput(nil, nil, nil, "   \t\n")
	s.ErrorIs(err, ErrEmptyGoals)
}

func (s *BuildAdvisoryInputSuite) TestSpendSpansAllHistory() {
	budgets := []models.Budget{s.budget(s.food.ID, "300.00")}
	transactions := []models.Transaction{
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			CategoryID:  s.food.ID,
			OccurredAt:  time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
			Description: "old expense",
			Amount:      decimal.NewFromInt(40),
		},
		{
			ID:          uuid.New(),
			UserID:      s.userID,
			CategoryID:  s.food.ID,
			OccurredAt:  time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			Description: "recent expense",
			Amount:      decimal.NewFromInt(60),
		},
	}

	request, err := BuildAdvisoryInput(budgets, transactions, s.categories, "save for a vacation")

	s.Require().NoError(err)
	s.Require().Len(request.SpendingData, 1)
	s.Equal("Food", request.SpendingData[0].Category)
	s.True(request.SpendingData[0].Amount.Equal(decimal.NewFromInt(100)))
	s.True(request.SpendingData[0].Budget.Equal(decimal.NewFromInt(300)))
	s.Equal("save for a vacation", request.FinancialGoals)
}

func (s *BuildAdvisoryInputSuite) TestUnresolvedCategoryIsDropped() {
	budgets := []models.Budget{
		s.budget(uuid.New(), "100.00"),
		s.budget(s.food.ID, "200.00"),
	}

	request, err := BuildAdvisoryInput(budgets, nil, s.categories, "reduce spending")

	s.Require().NoError(err)
	s.Require().Len(request.SpendingData, 1)
	s.Equal("Food", request.SpendingData[0].Category)
}

func (s *BuildAdvisoryInputSuite) TestNoBudgetsYieldsEmptyPayload() {
	request, err := BuildAdvisoryInput(nil, nil, s.categories, "build an emergency fund")

	s.Require().NoError(err)
	s.NotNil(request.SpendingData)
	s.Empty(request.SpendingData)
}
