package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"budgetwise/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budgetwise_api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats errors
// as standardized error responses and logs them appropriately
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
		message := fmt.Sprintf("%v", echoErr.Message)

		errorResponse = errors.NewErrorResponse(
			errorCode,
			traceID,
			errors.WithMessage(message),
		)
		httpStatus = echoErr.Code
	} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// Handle validation errors from go-playground/validator
		fieldErrors := make(map[string]string)
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		errorResponse = errors.NewValidationError(fieldErrors, traceID)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.ValidationInvalidFormat
	case http.StatusMethodNotAllowed:
		return errors.ValidationGeneral
	case http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusBadGateway:
		return errors.AdviceUnavailable
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "uuid":
		return "must be a valid UUID"
	case "month_key":
		return "must be a month in YYYY-MM form"
	case "color_token":
		return "must be a hex color or hsl() token"
	case "positive_amount":
		return "must be a decimal number greater than 0"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
