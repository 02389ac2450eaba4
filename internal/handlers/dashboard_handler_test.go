package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgetwise/internal/database"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DashboardHandlerSuite defines the test suite for DashboardHandler
type DashboardHandlerSuite struct {
	suite.Suite
	e        *echo.Echo
	db       *database.DB
	handler  *DashboardHandler
	testUser *models.User
	food     *models.Category
}

// SetupTest runs before each test in the suite
func (s *DashboardHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()

	s.db = database.SetupTestDB(s.T())
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	budgetRepo := repositories.NewBudgetRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	insightService := services.NewInsightService(transactionRepo, budgetRepo, categoryRepo)
	s.handler = NewDashboardHandler(insightService)

	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, s.testUser, "Food")
}

// TearDownTest runs after each test in the suite
func (s *DashboardHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestDashboardHandlerSuite runs the test suite
func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

func (s *DashboardHandlerSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.testUser.ID)
	return c, rec
}

func (s *DashboardHandlerSuite) createExpense(amount string, occurredAt time.Time) {
	transaction := &models.Transaction{
		UserID:      s.testUser.ID,
		CategoryID:  s.food.ID,
		OccurredAt:  occurredAt,
		Description: "test expense",
		Amount:      decimal.RequireFromString(amount),
	}
	s.Require().NoError(s.db.Create(transaction).Error)
}

func (s *DashboardHandlerSuite) TestBudgetProgressForExplicitMonth() {
	budget := &models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: s.food.ID,
		Amount:     decimal.NewFromInt(200),
		Month:      "2024-07",
	}
	s.Require().NoError(s.db.Create(budget).Error)
	s.createExpense("350.00", time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))

	c, rec := s.newContext("/api/v1/dashboard/budget-progress?month=2024-07")

	s.Require().NoError(s.handler.BudgetProgress(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []struct {
			CategoryName    string  `json:"categoryName"`
			Spent           string  `json:"spent"`
			DisplayProgress float64 `json:"displayProgress"`
			IsOver          bool    `json:"isOver"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Data, 1)
	s.Equal("Food", response.Data[0].CategoryName)
	s.Equal("350.00", response.Data[0].Spent)
	s.Equal(100.0, response.Data[0].DisplayProgress)
	s.True(response.Data[0].IsOver)
}

func (s *DashboardHandlerSuite) TestBudgetProgressRejectsMalformedMonth() {
	c, rec := s.newContext("/api/v1/dashboard/budget-progress?month=July-2024")

	s.Require().NoError(s.handler.BudgetProgress(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_004", response.Error.Code)
}

func (s *DashboardHandlerSuite) TestCategorySpendingOmitsZeroCategories() {
	database.CreateTestCategory(s.T(), s.db, s.testUser, "Transport")
	s.createExpense("60.00", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	c, rec := s.newContext("/api/v1/dashboard/category-spending")

	s.Require().NoError(s.handler.CategorySpending(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Data, 1)
	s.Equal("Food", response.Data[0].Name)
	s.Equal("60.00", response.Data[0].Value)
}

func (s *DashboardHandlerSuite) TestMissingUserContextIsRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Require().NoError(s.handler.Overview(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
