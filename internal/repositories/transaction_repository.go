package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves all transactions for a user, newest first
func (r *transactionRepository) GetByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByUserIDAndMonth retrieves a user's transactions that occurred within
// the given "YYYY-MM" month, newest first. The month must already be
// validated by the caller.
func (r *transactionRepository) GetByUserIDAndMonth(userID uuid.UUID, month string) ([]models.Transaction, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month key %q: %w", month, err)
	}
	end := start.AddDate(0, 1, 0)

	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for month: %w", err)
	}
	return transactions, nil
}

// GetRecentByUserID retrieves the most recent transactions for a user
func (r *transactionRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete deletes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
