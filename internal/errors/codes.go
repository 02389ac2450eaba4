package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthEmailTaken             ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
	BudgetInvalidMonth  ErrorCode = "BUDGET_003"
)

// Advice error codes (ADVICE_*)
const (
	AdviceGoalsRequired ErrorCode = "ADVICE_001"
	AdviceUnavailable   ErrorCode = "ADVICE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthEmailTaken:             "An account with this email already exists",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidMonth:  "Month must be in YYYY-MM form",
	ValidationInvalidAmount: "Amount must be a non-negative number",
	ValidationInvalidDate:   "Invalid date format or range",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInUse:         "Category is referenced by transactions or budgets",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must not be negative",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidAmount: "Budget amount must be positive",
	BudgetInvalidMonth:  "Budget month must be in YYYY-MM form",

	// Advice errors
	AdviceGoalsRequired: "Financial goals are required to generate advice",
	AdviceUnavailable:   "Failed to get personalized advice. Please try again later",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
