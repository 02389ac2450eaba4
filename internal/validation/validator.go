package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_key", validateMonthKey)
	_ = v.RegisterValidation("color_token", validateColorToken)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// validateMonthKey validates the YYYY-MM month scope format
func validateMonthKey(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if !monthKeyPattern.MatchString(month) {
		return false
	}

	mm := month[5:]
	return mm >= "01" && mm <= "12"
}

// validateColorToken validates that a color is a hex value or an hsl() token
func validateColorToken(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return false
	}
	return strings.HasPrefix(color, "#") || strings.HasPrefix(color, "hsl(")
}

// validatePositiveAmount validates that a decimal string parses and is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.IsPositive()
}
