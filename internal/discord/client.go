// Package discord provides a minimal client for the Discord REST API.
package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Discord REST API base URL.
	BaseURL = "https://discord.com/api/v10"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxPageSize is the documented ceiling for the messages endpoint.
	// Requests asking for more are clamped down to this value.
	MaxPageSize = 100

	// RateLimit is a conservative request budget. Discord allows 50
	// requests per second per bot; the sync stays far below that.
	RateLimit = 10.0
)

// Client is a rate-limited HTTP client for the Discord REST API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a Discord client authenticating with the given bot token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		token:      token,
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchMessages retrieves the most recent messages in a channel, newest
// first, in a single page. Limits above MaxPageSize are clamped down;
// limits below 1 use MaxPageSize.
func (c *Client) FetchMessages(ctx context.Context, channelID string, limit int) ([]Message, error) {
	if limit < 1 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/channels/%s/messages?limit=%d", c.baseURL, channelID, limit)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success
	case http.StatusUnauthorized:
		return nil, ErrInvalidToken
	case http.StatusForbidden:
		return nil, ErrMissingAccess
	case http.StatusNotFound:
		return nil, ErrChannelNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var messages []Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("parsing messages response: %w", err)
	}

	return messages, nil
}
