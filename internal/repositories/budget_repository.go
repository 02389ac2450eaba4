package repositories

import (
	"errors"
	"fmt"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget. Duplicate (category, month) pairs are not
// rejected here; the insight engine processes each record independently.
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByUserID retrieves all budgets for a user ordered by creation time
func (r *budgetRepository) GetByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByUserIDAndMonth retrieves a user's budgets for one calendar month
func (r *budgetRepository) GetByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ? AND month = ?", userID, month).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets for month: %w", err)
	}
	return budgets, nil
}

// Update updates a budget
func (r *budgetRepository) Update(budget *models.Budget) error {
	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

// Delete deletes a budget
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
