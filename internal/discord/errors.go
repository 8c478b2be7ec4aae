package discord

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrInvalidToken indicates the bot token was rejected.
	ErrInvalidToken = errors.New("invalid bot token (401 Unauthorized)")

	// ErrMissingAccess indicates the bot cannot read the channel.
	ErrMissingAccess = errors.New("bot lacks permission to read this channel (403 Forbidden)")

	// ErrChannelNotFound indicates the channel ID does not exist.
	ErrChannelNotFound = errors.New("channel not found (404 Not Found)")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error connecting to Discord")
)

// APIError represents an unclassified non-200 response from the Discord API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Discord API returned status %d: %s", e.StatusCode, e.Body)
}

// IsAuthError returns true if the error indicates an authentication or
// permission problem.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrMissingAccess) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}
