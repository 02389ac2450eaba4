package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category CRUD endpoints. Categories have no
// business logic beyond ownership and uniqueness, so the handler talks to
// the repository directly.
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
	}
}

// List returns all categories for the authenticated user
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewCategoryListResponse(categories),
	})
}

// Create creates a new category
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category := &models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Color:  req.Color,
	}

	if err := category.Validate(); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.categoryRepo.Create(category); err != nil {
		if isUniqueViolation(err) {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// Update updates a category's name and color
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	if category.UserID != userID {
		return SendError(c, errors.CategoryNotFound)
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Color = req.Color

	if err := category.Validate(); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.categoryRepo.Update(category); err != nil {
		if isUniqueViolation(err) {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewCategoryResponse(category),
		Message: "Category updated successfully",
	})
}

// Delete deletes a category if nothing references it
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	if category.UserID != userID {
		return SendError(c, errors.CategoryNotFound)
	}

	if err := h.categoryRepo.Delete(categoryID); err != nil {
		if stderrors.Is(err, repositories.ErrCategoryInUse) {
			return SendError(c, errors.CategoryInUse)
		}
		if stderrors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
