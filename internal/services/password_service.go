package services

import (
	"errors"
	"fmt"
	"unicode"

	"budgetwise/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooWeak  = errors.New("password must contain letters and numbers")
)

// PasswordService handles password hashing and validation
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a new password service
func NewPasswordService(cfg *config.SecurityConfig) PasswordServiceInterface {
	return &PasswordService{
		cost:      cfg.BCryptCost,
		minLength: cfg.PasswordMinLength,
	}
}

// ValidatePassword checks a plaintext password against the policy
func (ps *PasswordService) ValidatePassword(password string) error {
	if len(password) < ps.minLength {
		return fmt.Errorf("%w: minimum length is %d", ErrPasswordTooShort, ps.minLength)
	}

	var hasLetter, hasNumber bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsNumber(c):
			hasNumber = true
		}
	}

	if !hasLetter || !hasNumber {
		return ErrPasswordTooWeak
	}

	return nil
}

// HashPassword validates and hashes a plaintext password
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks a plaintext password against a stored hash
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
