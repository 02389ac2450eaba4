package repositories

import (
	"budgetwise/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines user persistence operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CategoryRepositoryInterface defines category persistence operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines transaction persistence operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines budget persistence operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetByUserID(userID uuid.UUID) ([]models.Budget, error)
	GetByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
}
