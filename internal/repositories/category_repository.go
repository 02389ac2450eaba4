package repositories

import (
	"errors"
	"fmt"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is referenced by transactions or budgets")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch creates multiple categories in a single database transaction
func (r *categoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to create batch categories: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByUserID retrieves all categories for a user ordered by name
func (r *categoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Update updates a category
func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete deletes a category. Categories still referenced by transactions or
// budgets are refused; deleting them would orphan those records.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	var txnCount int64
	if err := r.db.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&txnCount).Error; err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}

	var budgetCount int64
	if err := r.db.Model(&models.Budget{}).Where("category_id = ?", id).Count(&budgetCount).Error; err != nil {
		return fmt.Errorf("failed to count category budgets: %w", err)
	}

	if txnCount > 0 || budgetCount > 0 {
		return ErrCategoryInUse
	}

	result := r.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
