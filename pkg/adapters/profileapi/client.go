// Package profileapi implements the ProfileService port against the remote
// profile backend: a single JSON POST and a typed error on rejection. The
// client never retries on its own.
package profileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lumora-app/intake/pkg/domain"
)

const defaultTimeout = 10 * time.Second

// Client calls the profile backend's updateProfile operation.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithAuthToken sets a bearer token attached to every request.
func WithAuthToken(token string) Option {
	return func(cl *Client) {
		cl.authToken = token
	}
}

// New creates a client for the given base URL (e.g. "https://api.example.com").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateProfile submits the payload once. A non-2xx response becomes a
// *domain.SubmissionError carrying the backend's message.
func (c *Client) UpdateProfile(ctx context.Context, payload domain.SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/profile", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.SubmissionError{Message: "profile service unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &domain.SubmissionError{Message: readErrorMessage(resp)}
}

// readErrorMessage extracts a human-readable message from an error response,
// falling back to the HTTP status.
func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			if body.Error != "" {
				return body.Error
			}
			if body.Message != "" {
				return body.Message
			}
		}
	}
	return resp.Status
}
