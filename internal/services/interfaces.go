package services

import (
	"context"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/dto"
	"budgetwise/internal/insights"
	"budgetwise/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// InsightServiceInterface exposes the derived spending views computed by the
// pure aggregation engine over a user's stored snapshot.
type InsightServiceInterface interface {
	// GetOverview computes totals scoped to the calendar month of now
	GetOverview(userID uuid.UUID, now time.Time) (*insights.Overview, error)

	// GetBudgetProgress computes per-budget progress for a target month
	GetBudgetProgress(userID uuid.UUID, targetMonth string) ([]insights.ProgressEntry, error)

	// GetSpendingSeries computes the daily series for the month of now
	GetSpendingSeries(userID uuid.UUID, now time.Time) ([]insights.SpendingPoint, error)

	// GetCategorySpending computes the all-history category breakdown
	GetCategorySpending(userID uuid.UUID) ([]insights.CategorySlice, error)
}

// AdviceServiceInterface builds the advisory payload from stored data and
// dispatches it to the external advice collaborator.
type AdviceServiceInterface interface {
	GetAdvice(ctx context.Context, userID uuid.UUID, financialGoals string) (*advisor.AdviceResult, error)
}

// SampleDataServiceInterface seeds realistic expense data for development
type SampleDataServiceInterface interface {
	GenerateSampleTransactions(userID uuid.UUID, reference time.Time, count int) ([]models.Transaction, error)
}

type MetricsRecorderInterface interface {
	IncrementRequestCount(method, path string, status int)
	RecordRequestDuration(method, path string, duration time.Duration)
	RecordAdviceCall(success bool)
}
