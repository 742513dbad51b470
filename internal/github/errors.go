package github

import (
	"fmt"
	"time"
)

// NotFoundError indicates the requested GitHub user does not exist.
// Terminal: there is no retry path other than trying a different username.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// RateLimitError indicates the API quota is exhausted. Retryable once ResetAt
// has passed; the message renders the reset as a human-readable local time.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "rate limit exceeded"
	}
	return fmt.Sprintf("rate limit exceeded, resets at %s", e.ResetAt.Local().Format("3:04:05 PM"))
}

// APIError covers any other non-2xx GitHub response.
type APIError struct {
	Status     int
	StatusText string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api error: %d %s", e.Status, e.StatusText)
}

// NetworkError wraps transport-level failures (DNS, connect, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
