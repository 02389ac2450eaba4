package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ClientSuite defines the test suite for the advice collaborator client
type ClientSuite struct {
	suite.Suite
	request *AdviceRequest
}

func (s *ClientSuite) SetupTest() {
	s.request = &AdviceRequest{
		SpendingData:   []SpendingEntry{},
		FinancialGoals: "save more",
	}
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) TestSuccessfulAdviceCall() {
	var gotAuth string
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var payload AdviceRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&payload))
		s.Equal("save more", payload.FinancialGoals)

		json.NewEncoder(w).Encode(AdviceResult{
			Suggestions: []Suggestion{
				{Category: "Food", Suggestion: "Cook at home more often"},
			},
			OverallAnalysis: "Spending is close to budget overall",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	result, err := client.GetAdvice(context.Background(), s.request)

	s.Require().NoError(err)
	s.Equal("Bearer test-key", gotAuth)
	s.Equal("/v1/advice", gotPath)
	s.Len(result.Suggestions, 1)
	s.Equal("Spending is close to budget overall", result.OverallAnalysis)
}

func (s *ClientSuite) TestNonOKStatusCollapsesToGenericError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.GetAdvice(context.Background(), s.request)

	s.ErrorIs(err, ErrAdviceUnavailable)
}

func (s *ClientSuite) TestMalformedBodyCollapsesToGenericError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.GetAdvice(context.Background(), s.request)

	s.ErrorIs(err, ErrAdviceUnavailable)
}

func (s *ClientSuite) TestMissingAnalysisFailsShapeValidation() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AdviceResult{
			Suggestions: []Suggestion{{Category: "Food", Suggestion: "Spend less"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.GetAdvice(context.Background(), s.request)

	s.ErrorIs(err, ErrAdviceUnavailable)
}

func (s *ClientSuite) TestUnreachableCollaborator() {
	client := NewClient("http://127.0.0.1:1", "", time.Second)
	_, err := client.GetAdvice(context.Background(), s.request)

	s.ErrorIs(err, ErrAdviceUnavailable)
}
