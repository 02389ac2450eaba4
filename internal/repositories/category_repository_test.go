package repositories

import (
	"testing"
	"time"

	"budgetwise/internal/database"
	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     CategoryRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreateAndGetByUserID() {
	category := &models.Category{
		UserID: s.testUser.ID,
		Name:   "Food",
		Color:  "#22c55e",
	}
	s.NoError(s.repo.Create(category))
	s.NotEqual(uuid.Nil, category.ID)

	categories, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(categories, 1)
	s.Equal("Food", categories[0].Name)
}

func (s *CategoryRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestDeleteRefusedWhenReferencedByTransaction() {
	category := database.CreateTestCategory(s.T(), s.db, s.testUser, "Food")

	transaction := &models.Transaction{
		UserID:      s.testUser.ID,
		CategoryID:  category.ID,
		OccurredAt:  time.Now(),
		Description: "Groceries",
		Amount:      decimal.NewFromInt(40),
	}
	s.NoError(s.db.Create(transaction).Error)

	err := s.repo.Delete(category.ID)
	s.ErrorIs(err, ErrCategoryInUse)
}

func (s *CategoryRepositorySuite) TestDeleteRefusedWhenReferencedByBudget() {
	category := database.CreateTestCategory(s.T(), s.db, s.testUser, "Food")

	budget := &models.Budget{
		UserID:     s.testUser.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(300),
		Month:      "2024-07",
	}
	s.NoError(s.db.Create(budget).Error)

	err := s.repo.Delete(category.ID)
	s.ErrorIs(err, ErrCategoryInUse)
}

func (s *CategoryRepositorySuite) TestDeleteUnreferencedCategory() {
	category := database.CreateTestCategory(s.T(), s.db, s.testUser, "Unused")

	s.NoError(s.repo.Delete(category.ID))

	_, err := s.repo.GetByID(category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestUpdate() {
	category := database.CreateTestCategory(s.T(), s.db, s.testUser, "Food")

	category.Name = "Dining"
	category.Color = "#f97316"
	s.NoError(s.repo.Update(category))

	fetched, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Dining", fetched.Name)
	s.Equal("#f97316", fetched.Color)
}
