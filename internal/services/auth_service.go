package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budgetwise/internal/database"
	"budgetwise/internal/dto"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles user registration and authentication
type AuthService struct {
	db              *database.DB
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	db *database.DB,
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		db:              db,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Register creates a new user account and seeds its default categories
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := database.SeedDefaultCategories(s.db.DB, user.ID); err != nil {
		// The account is usable without the fixture set; the user can
		// still create categories manually.
		s.logger.Error("failed to seed default categories",
			"user_id", user.ID,
			"error", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshTokens exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshTokens(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, accessExpiry, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    accessExpiry,
		User:         dto.NewUserResponse(user),
	}, nil
}
