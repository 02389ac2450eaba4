package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidColorToken    = errors.New("invalid category color token")
)

// Category is a user-defined spending bucket (e.g. "Food"). The insight
// engine treats categories as a read-only lookup keyed by ID.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Color     string    `gorm:"type:varchar(50);not null" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidColorToken(c.Color) {
		return ErrInvalidColorToken
	}
	return nil
}

// IsValidColorToken checks that a color is a usable display token:
// either a hex value ("#22c55e") or a theme token ("hsl(var(--chart-1))").
func IsValidColorToken(color string) bool {
	if color == "" {
		return false
	}
	return strings.HasPrefix(color, "#") || strings.HasPrefix(color, "hsl(")
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
