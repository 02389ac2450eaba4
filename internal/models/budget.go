package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNonPositiveBudget         = errors.New("budget amount must be positive")
	ErrInvalidMonthKey           = errors.New("budget month must be in YYYY-MM form")
	ErrBudgetCategoryRefRequired = errors.New("budget category reference is required")
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Budget is a monthly spending ceiling assigned to one category. At most one
// budget is expected per (category, month) pair, but duplicates are tolerated
// and processed independently by the insight engine.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month      string          `gorm:"type:varchar(7);not null;index" json:"month"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRefRequired
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveBudget
	}
	if !IsValidMonthKey(b.Month) {
		return ErrInvalidMonthKey
	}
	return nil
}

// IsValidMonthKey checks that a month string matches the canonical
// "YYYY-MM" form. Malformed values are a caller error, never coerced.
func IsValidMonthKey(month string) bool {
	if !monthKeyPattern.MatchString(month) {
		return false
	}
	mm := month[5:]
	return mm >= "01" && mm <= "12"
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
