package handlers

import (
	stderrors "errors"
	"net/http"

	"budgetwise/internal/dto"
	"budgetwise/internal/errors"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserResponse} "User created successfully"
// @Failure 400 {object} errors.ErrorResponse "Validation error"
// @Failure 409 {object} errors.ErrorResponse "Email already registered - AUTH_006"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrEmailAlreadyExists) {
			return SendError(c, errors.AuthEmailTaken)
		}
		if stderrors.Is(err, services.ErrPasswordTooShort) || stderrors.Is(err, services.ErrPasswordTooWeak) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewUserResponse(user),
		Message: "User registered successfully",
	})
}

// Login handles user authentication
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful with JWT tokens"
// @Failure 401 {object} errors.ErrorResponse "Invalid credentials - AUTH_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse "Token refreshed successfully"
// @Failure 401 {object} errors.ErrorResponse "Invalid refresh token - AUTH_004"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		if stderrors.Is(err, services.ErrExpiredToken) {
			return SendError(c, errors.AuthExpiredToken)
		}
		if stderrors.Is(err, services.ErrInvalidToken) || stderrors.Is(err, services.ErrInvalidTokenType) ||
			stderrors.Is(err, services.ErrInvalidIssuer) || stderrors.Is(err, services.ErrEmptyToken) {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}
