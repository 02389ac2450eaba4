package dto

import (
	"time"

	"budgetwise/internal/models"
)

// CreateTransactionRequest contains data for recording an expense
type CreateTransactionRequest struct {
	CategoryID  string    `json:"categoryId" validate:"required,uuid"`
	OccurredAt  time.Time `json:"occurredAt" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=255"`
	Amount      string    `json:"amount" validate:"required,positive_amount"`
}

// UpdateTransactionRequest contains data for editing an expense
type UpdateTransactionRequest struct {
	CategoryID  string    `json:"categoryId" validate:"required,uuid"`
	OccurredAt  time.Time `json:"occurredAt" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=255"`
	Amount      string    `json:"amount" validate:"required,positive_amount"`
}

// TransactionResponse represents a recorded expense
type TransactionResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a transaction model to its response shape
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		CategoryID:  transaction.CategoryID.String(),
		OccurredAt:  transaction.OccurredAt,
		Description: transaction.Description,
		Amount:      transaction.Amount.StringFixed(2),
		CreatedAt:   transaction.CreatedAt,
	}
}

// NewTransactionListResponse maps a slice of transaction models
func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
