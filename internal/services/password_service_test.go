package services

import (
	"testing"

	"budgetwise/internal/config"

	"github.com/stretchr/testify/suite"
)

// PasswordServiceSuite defines the test suite for PasswordService
type PasswordServiceSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test in the suite
func (s *PasswordServiceSuite) SetupTest() {
	s.service = NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4, // minimum cost keeps the suite fast
		PasswordMinLength: 8,
	})
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceSuite))
}

func (s *PasswordServiceSuite) TestHashAndCompare() {
	hash, err := s.service.HashPassword("sturdy-pass1")
	s.Require().NoError(err)
	s.NotEqual("sturdy-pass1", hash)

	s.True(s.service.ComparePassword("sturdy-pass1", hash))
	s.False(s.service.ComparePassword("wrong-pass1", hash))
}

func (s *PasswordServiceSuite) TestRejectsShortPassword() {
	_, err := s.service.HashPassword("ab1")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceSuite) TestRejectsPasswordWithoutNumbers() {
	err := s.service.ValidatePassword("onlyletters")
	s.ErrorIs(err, ErrPasswordTooWeak)
}

func (s *PasswordServiceSuite) TestRejectsPasswordWithoutLetters() {
	err := s.service.ValidatePassword("1234567890")
	s.ErrorIs(err, ErrPasswordTooWeak)
}
