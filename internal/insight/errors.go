package insight

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultRetryAfterSecs = 60
	maxErrorBody          = 500
)

// RateLimitError is returned when a provider answers 429. FallbackGenerator
// keeps the failing (provider, credential) pair out of rotation for RetryAfter.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// NewRateLimitError wraps err. A non-positive retryAfterSecs means the
// provider gave no hint, so a minute is assumed.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = defaultRetryAfterSecs
	}
	return &RateLimitError{
		Provider:   provider,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Err:        err,
	}
}

// ParseRetryAfterHeader reads the delay-seconds form of Retry-After.
// Anything else, including HTTP dates, yields 0.
func ParseRetryAfterHeader(val string) int {
	secs, err := strconv.Atoi(val)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}

// StatusError turns a non-200 provider reply into an error. api names the
// upstream in the message; provider labels the RateLimitError on 429.
func StatusError(provider, api string, resp *http.Response, body []byte) error {
	err := fmt.Errorf("%s API error (status %d): %s", api, resp.StatusCode, Truncate(string(body), maxErrorBody))
	if resp.StatusCode != http.StatusTooManyRequests {
		return err
	}
	return NewRateLimitError(provider, err, ParseRetryAfterHeader(resp.Header.Get("Retry-After")))
}

// Truncate shortens provider error bodies for logs and messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
