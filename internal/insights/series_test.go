package insights

import (
	"testing"
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DailySpendingSeriesSuite defines the test suite for the daily series
type DailySpendingSeriesSuite struct {
	suite.Suite
	categoryID uuid.UUID
}

func (s *DailySpendingSeriesSuite) SetupTest() {
	s.categoryID = uuid.New()
}

func TestDailySpendingSeriesSuite(t *testing.T) {
	suite.Run(t, new(DailySpendingSeriesSuite))
}

func (s *DailySpendingSeriesSuite) expense(amount string, occurredAt time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CategoryID:  s.categoryID,
		OccurredAt:  occurredAt,
		Description: "test expense",
		Amount:      decimal.RequireFromString(amount),
	}
}

func (s *DailySpendingSeriesSuite) TestStopsAtToday() {
	now := time.Date(2024, 7, 15, 14, 30, 0, 0, time.UTC)

	points := DailySpendingSeries(nil, now, now)

	s.Len(points, 15)
	s.Equal("Jul 1", points[0].Label)
	s.Equal("Jul 15", points[14].Label)
}

func (s *DailySpendingSeriesSuite) TestFullMonthWhenReferenceIsPast() {
	reference := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	points := DailySpendingSeries(nil, reference, now)

	// 2024 is a leap year
	s.Len(points, 29)
	s.Equal("Feb 29", points[28].Label)
}

func (s *DailySpendingSeriesSuite) TestZeroSpendDaysCarryNil() {
	now := time.Date(2024, 7, 3, 23, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		s.expense("40.00", time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC)),
		s.expense("10.00", time.Date(2024, 7, 2, 18, 0, 0, 0, time.UTC)),
	}

	points := DailySpendingSeries(transactions, now, now)

	s.Require().Len(points, 3)
	s.Nil(points[0].Spending)
	s.Require().NotNil(points[1].Spending)
	s.True(points[1].Spending.Equal(decimal.NewFromInt(50)))
	s.Nil(points[2].Spending)
}

func (s *DailySpendingSeriesSuite) TestIgnoresOtherMonths() {
	now := time.Date(2024, 7, 5, 12, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		s.expense("99.00", time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)),
		s.expense("99.00", time.Date(2023, 7, 5, 12, 0, 0, 0, time.UTC)),
	}

	points := DailySpendingSeries(transactions, now, now)

	for _, point := range points {
		s.Nil(point.Spending, "day %s should have no spend", point.Label)
	}
}

func (s *DailySpendingSeriesSuite) TestFirstOfMonthYieldsSinglePoint() {
	now := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

	points := DailySpendingSeries(nil, now, now)

	s.Require().Len(points, 1)
	s.Equal("Jul 1", points[0].Label)
}
