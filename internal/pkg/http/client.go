package http

import (
	"net/http"
	"time"
)

// defaultTimeout bounds upstream calls when the ride service config leaves
// the timeout unset; the reconciler's poll cadence assumes requests finish
// well inside one interval.
const defaultTimeout = 10 * time.Second

// Client carries the base endpoint and timeout policy for calls to a remote
// ride platform service. The GraphQL layer builds its requests on top of it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given service endpoint
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
