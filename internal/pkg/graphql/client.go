package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httpclient "github.com/delivermi/rider-app/internal/pkg/http"
)

// Client executes GraphQL operations against a single endpoint over HTTP POST
type Client struct {
	client    *httpclient.Client
	authToken string
}

// NewClient creates a new GraphQL client
func NewClient(endpoint string, timeout time.Duration, authToken string) *Client {
	return &Client{
		client:    httpclient.NewClient(endpoint, timeout),
		authToken: authToken,
	}
}

// request is the standard GraphQL HTTP request envelope
type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// response is the standard GraphQL HTTP response envelope
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors ErrorList       `json:"errors"`
}

// Error is a single GraphQL error entry
type Error struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// ErrorList aggregates GraphQL errors into a single error value
type ErrorList []Error

func (e ErrorList) Error() string {
	msgs := make([]string, 0, len(e))
	for _, entry := range e {
		msgs = append(msgs, entry.Message)
	}
	return fmt.Sprintf("graphql errors: %s", strings.Join(msgs, "; "))
}

// HasCode reports whether any error entry carries the given extension code
func (e ErrorList) HasCode(code string) bool {
	for _, entry := range e {
		if entry.Extensions.Code == code {
			return true
		}
	}
	return false
}

// Do executes a query or mutation and unmarshals the data payload into out.
// A non-empty errors array is returned as an ErrorList even when partial data
// is present.
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	reqBody, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.BaseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send graphql request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var envelope response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to parse graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return envelope.Errors
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal graphql data: %w", err)
		}
	}

	return nil
}
