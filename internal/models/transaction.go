package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeAmount      = errors.New("transaction amount must not be negative")
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrCategoryRefRequired = errors.New("transaction category reference is required")
	ErrOccurredAtRequired  = errors.New("transaction date is required")
)

// Transaction is a single recorded expense against one category.
// Amounts are zero or positive; negative values are a caller error and are
// rejected here, never clamped.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.CategoryID == uuid.Nil {
		return ErrCategoryRefRequired
	}
	if t.OccurredAt.IsZero() {
		return ErrOccurredAtRequired
	}
	if t.Description == "" {
		return ErrDescriptionRequired
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
