package insights

import (
	"testing"
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// OverviewSuite defines the test suite for overview and breakdown totals
type OverviewSuite struct {
	suite.Suite
	userID uuid.UUID
}

func (s *OverviewSuite) SetupTest() {
	s.userID = uuid.New()
}

func TestOverviewSuite(t *testing.T) {
	suite.Run(t, new(OverviewSuite))
}

func (s *OverviewSuite) expense(categoryID uuid.UUID, amount string) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		CategoryID:  categoryID,
		OccurredAt:  time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Description: "test expense",
		Amount:      decimal.RequireFromString(amount),
	}
}

func (s *OverviewSuite) TestTotalsAndRemaining() {
	categoryID := uuid.New()
	transactions := []models.Transaction{
		s.expense(categoryID, "120.00"),
		s.expense(categoryID, "80.00"),
	}
	budgets := []models.Budget{
		{ID: uuid.New(), UserID: s.userID, CategoryID: categoryID, Amount: decimal.NewFromInt(500), Month: "2024-07"},
	}

	overview := OverviewTotals(transactions, budgets)

	s.True(overview.TotalSpending.Equal(decimal.NewFromInt(200)))
	s.True(overview.TotalBudget.Equal(decimal.NewFromInt(500)))
	s.True(overview.Remaining.Equal(decimal.NewFromInt(300)))
}

func (s *OverviewSuite) TestRemainingGoesNegativeOnOverspend() {
	categoryID := uuid.New()
	transactions := []models.Transaction{
		s.expense(categoryID, "700.00"),
	}
	budgets := []models.Budget{
		{ID: uuid.New(), UserID: s.userID, CategoryID: categoryID, Amount: decimal.NewFromInt(500), Month: "2024-07"},
	}

	overview := OverviewTotals(transactions, budgets)

	s.True(overview.Remaining.Equal(decimal.NewFromInt(-200)))
}

func (s *OverviewSuite) TestEmptySnapshotYieldsZeroes() {
	overview := OverviewTotals(nil, nil)

	s.True(overview.TotalSpending.IsZero())
	s.True(overview.TotalBudget.IsZero())
	s.True(overview.Remaining.IsZero())
}

func (s *OverviewSuite) TestCategorySpendingOmitsZeroSpend() {
	food := models.Category{ID: uuid.New(), UserID: s.userID, Name: "Food", Color: "#22c55e"}
	transport := models.Category{ID: uuid.New(), UserID: s.userID, Name: "Transport", Color: "#3b82f6"}

	transactions := []models.Transaction{
		s.expense(food.ID, "45.00"),
		s.expense(food.ID, "15.00"),
	}

	slices := CategorySpending(transactions, []models.Category{food, transport})

	s.Require().Len(slices, 1)
	s.Equal("Food", slices[0].Name)
	s.Equal("#22c55e", slices[0].Color)
	s.True(slices[0].Value.Equal(decimal.NewFromInt(60)))
}

func (s *OverviewSuite) TestCategorySpendingFollowsCategoryOrder() {
	food := models.Category{ID: uuid.New(), UserID: s.userID, Name: "Food", Color: "#22c55e"}
	transport := models.Category{ID: uuid.New(), UserID: s.userID, Name: "Transport", Color: "#3b82f6"}

	transactions := []models.Transaction{
		s.expense(transport.ID, "30.00"),
		s.expense(food.ID, "10.00"),
	}

	slices := CategorySpending(transactions, []models.Category{transport, food})

	s.Require().Len(slices, 2)
	s.Equal("Transport", slices[0].Name)
	s.Equal("Food", slices[1].Name)
}
