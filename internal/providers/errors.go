package providers

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel outcomes for upstream calls. Expected upstream failure modes are
// returned as tagged errors, never panics; only programming errors propagate
// as faults.
var (
	// ErrUnavailable covers network failures and timeouts reaching the provider.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMalformed marks a success-status response lacking the expected
	// envelope shape, which indicates a provider contract change.
	ErrMalformed = errors.New("upstream response malformed")
	// ErrNotFound marks a well-formed response with zero matching entities
	// for a single-entity lookup.
	ErrNotFound = errors.New("not found")
)

// UpstreamError captures a non-success upstream HTTP status.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is treats upstream HTTP errors as a flavor of unavailability so callers can
// match the whole class with errors.Is(err, ErrUnavailable).
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUnavailable
}

// RateLimitError captures rate limit responses from the upstream provider.
type RateLimitError struct {
	Endpoint   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
