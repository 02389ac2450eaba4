package dto

import (
	"time"

	"budgetwise/internal/models"
)

// CreateCategoryRequest contains data for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"required,color_token"`
}

// UpdateCategoryRequest contains data for updating a category
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"required,color_token"`
}

// CategoryResponse represents a category
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategoryResponse maps a category model to its response shape
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// NewCategoryListResponse maps a slice of category models
func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
