package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles expense recording endpoints
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// List returns the user's transactions, newest first. The limit query
// parameter caps the result set.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", 0)

	var transactions []models.Transaction
	if limit > 0 {
		transactions, err = h.transactionRepo.GetRecentByUserID(userID, limit)
	} else {
		transactions, err = h.transactionRepo.GetByUserID(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewTransactionListResponse(transactions),
	})
}

// Create records a new expense
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, errCode := h.buildTransaction(userID, req.CategoryID, req.OccurredAt, req.Description, req.Amount)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewTransactionResponse(transaction),
		Message: "Transaction recorded successfully",
	})
}

// Update edits an existing expense
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	existing, err := h.transactionRepo.GetByID(transactionID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	if existing.UserID != userID {
		return SendError(c, errors.TransactionNotFound)
	}

	updated, errCode := h.buildTransaction(userID, req.CategoryID, req.OccurredAt, req.Description, req.Amount)
	if errCode != "" {
		return SendError(c, errCode)
	}

	existing.CategoryID = updated.CategoryID
	existing.OccurredAt = updated.OccurredAt
	existing.Description = updated.Description
	existing.Amount = updated.Amount

	if err := h.transactionRepo.Update(existing); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTransactionResponse(existing),
		Message: "Transaction updated successfully",
	})
}

// Delete removes an expense
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	existing, err := h.transactionRepo.GetByID(transactionID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	if existing.UserID != userID {
		return SendError(c, errors.TransactionNotFound)
	}

	if err := h.transactionRepo.Delete(transactionID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// buildTransaction validates the category reference and amount and assembles
// a transaction model. The returned error code is empty on success.
func (h *TransactionHandler) buildTransaction(userID uuid.UUID, rawCategoryID string, occurredAt time.Time, description, rawAmount string) (*models.Transaction, errors.ErrorCode) {
	categoryID, err := uuid.Parse(rawCategoryID)
	if err != nil {
		return nil, errors.ValidationInvalidFormat
	}

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil || category.UserID != userID {
		return nil, errors.CategoryNotFound
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || amount.IsNegative() {
		return nil, errors.TransactionInvalidAmount
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		OccurredAt:  occurredAt,
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}

	if err := transaction.Validate(); err != nil {
		return nil, errors.ValidationGeneral
	}

	return transaction, ""
}
