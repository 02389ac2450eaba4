package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ClientInterface is the one-shot request/response boundary to the external
// advice-generation collaborator. No retry, no internal cancellation beyond
// the caller's context, no shared state between calls.
type ClientInterface interface {
	GetAdvice(ctx context.Context, request *AdviceRequest) (*AdviceResult, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an advice client for the configured collaborator endpoint
func NewClient(baseURL, apiKey string, timeout time.Duration) ClientInterface {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetAdvice posts the advisory payload and decodes the structured response.
// Every transport, status, or shape failure collapses into the single
// generic ErrAdviceUnavailable; the underlying cause is logged server-side.
func (c *client) GetAdvice(ctx context.Context, request *AdviceRequest) (*AdviceResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode advice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/advice", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build advice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("advice collaborator unreachable", "error", err)
		return nil, ErrAdviceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("advice collaborator returned non-OK status", "status", resp.StatusCode)
		return nil, ErrAdviceUnavailable
	}

	var result AdviceResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("failed to decode advice response", "error", err)
		return nil, ErrAdviceUnavailable
	}

	if err := validateShape(&result); err != nil {
		slog.Error("advice response failed shape validation", "error", err)
		return nil, ErrAdviceUnavailable
	}

	return &result, nil
}

// validateShape checks the structural contract of the collaborator response
// without interpreting the advice text itself.
func validateShape(result *AdviceResult) error {
	if strings.TrimSpace(result.OverallAnalysis) == "" {
		return fmt.Errorf("missing overall analysis")
	}
	for i := range result.Suggestions {
		s := &result.Suggestions[i]
		if strings.TrimSpace(s.Category) == "" || strings.TrimSpace(s.Suggestion) == "" {
			return fmt.Errorf("suggestion %d is missing category or text", i)
		}
	}
	return nil
}
