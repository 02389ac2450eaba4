package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetwise/internal/advisor"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// fakeAdviceService returns a canned result or error
type fakeAdviceService struct {
	result *advisor.AdviceResult
	err    error
	calls  int
}

func (f *fakeAdviceService) GetAdvice(ctx context.Context, userID uuid.UUID, financialGoals string) (*advisor.AdviceResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// AdviceHandlerSuite defines the test suite for AdviceHandler
type AdviceHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	service *fakeAdviceService
	handler *AdviceHandler
	userID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AdviceHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.service = &fakeAdviceService{
		result: &advisor.AdviceResult{
			Suggestions:     []advisor.Suggestion{{Category: "Food", Suggestion: "Cook at home"}},
			OverallAnalysis: "Spending looks stable",
		},
	}
	s.handler = NewAdviceHandler(s.service)
	s.userID = uuid.New()
}

// TestAdviceHandlerSuite runs the test suite
func TestAdviceHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdviceHandlerSuite))
}

func (s *AdviceHandlerSuite) newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *AdviceHandlerSuite) TestSuccessfulAdvice() {
	c, rec := s.newContext(`{"financialGoals":"save for a house"}`)

	s.Require().NoError(s.handler.GetAdvice(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Suggestions []struct {
				Category   string `json:"category"`
				Suggestion string `json:"suggestion"`
			} `json:"suggestions"`
			OverallAnalysis string `json:"overallAnalysis"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Equal("Spending looks stable", response.Data.OverallAnalysis)
	s.Require().Len(response.Data.Suggestions, 1)
	s.Equal("Food", response.Data.Suggestions[0].Category)
}

func (s *AdviceHandlerSuite) TestWhitespaceGoalsReturnBadRequest() {
	s.service.err = advisor.ErrEmptyGoals

	c, rec := s.newContext(`{"financialGoals":"   "}`)

	s.Require().NoError(s.handler.GetAdvice(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ADVICE_001", response.Error.Code)
}

func (s *AdviceHandlerSuite) TestCollaboratorFailureReturnsBadGateway() {
	s.service.err = advisor.ErrAdviceUnavailable

	c, rec := s.newContext(`{"financialGoals":"retire early"}`)

	s.Require().NoError(s.handler.GetAdvice(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ADVICE_002", response.Error.Code)
}

func (s *AdviceHandlerSuite) TestMissingUserContextIsRejected() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(`{"financialGoals":"save"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Require().NoError(s.handler.GetAdvice(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Zero(s.service.calls)
}
