// Package githubapi provides a typed, read-only client for the three
// code-hosting endpoints the presence aggregator consumes: user profile,
// repository list, and event feed.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout is the per-request timeout.
const DefaultTimeout = 15 * time.Second

// maxRepoPage is how many repositories a single analysis looks at.
const maxRepoPage = 100

// Client talks to the code-hosting API. The engine only reads.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests, proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a Client. token may be empty, in which case requests are
// unauthenticated and subject to the anonymous rate limit.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUser fetches the public profile for a username.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/users/%s", username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepositories fetches up to 100 of the user's repositories, most
// recently updated first.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	path := fmt.Sprintf("/users/%s/repos?per_page=%d&sort=updated", username, maxRepoPage)
	if err := c.get(ctx, path, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListEvents fetches the user's recent public events. Event history is
// best-effort; callers treat an error here as an absent signal.
func (c *Client) ListEvents(ctx context.Context, username string) ([]Event, error) {
	var events []Event
	path := fmt.Sprintf("/users/%s/events/public?per_page=%d", username, maxRepoPage)
	if err := c.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// get performs a GET with the fixed identifying headers and decodes the body.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &APIError{Path: path, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "candidate-signals")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Path: path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Path: path, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Path: path, StatusCode: resp.StatusCode, Message: "failed to decode response", Cause: err}
	}
	return nil
}
