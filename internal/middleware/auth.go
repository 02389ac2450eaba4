package middleware

import (
	stderrors "errors"

	"budgetwise/internal/errors"
	"budgetwise/internal/handlers"
	"budgetwise/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT access token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}
