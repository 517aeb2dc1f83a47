package api

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// defaultRetryOn lists the status codes retried unless the caller
// overrides them: request timeout, rate limiting, and server errors.
var defaultRetryOn = []int{408, 429, 500, 502, 503, 504}

// RetryConfig configures retry behavior for failed HTTP requests.
// Network-level failures are always retryable; HTTP responses are retried
// only when their status code appears in RetryOn.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the
	// initial request.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration
	// Multiplier grows the delay after each attempt.
	Multiplier float64
	// Jitter is the randomization factor (0.0 to 1.0) applied to delays
	// to prevent thundering herd.
	Jitter float64
	// RetryOn is the set of HTTP status codes that trigger a retry.
	RetryOn []int
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
		RetryOn:    defaultRetryOn,
	}
}

// ShouldRetry reports whether a response with the given status code should
// be retried at this attempt.
func (r *RetryConfig) ShouldRetry(attempt, statusCode int) bool {
	if attempt >= r.MaxRetries {
		return false
	}
	for _, code := range r.RetryOn {
		if code == statusCode {
			return true
		}
	}
	return false
}

// Delay calculates the backoff before the next retry attempt.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	delay := float64(r.BaseDelay) * math.Pow(r.Multiplier, float64(attempt))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}

	if r.Jitter > 0 {
		jitterAmount := delay * r.Jitter
		delay = delay - jitterAmount + (rand.Float64() * 2 * jitterAmount)
	}

	return time.Duration(delay)
}

// Wait sleeps for the attempt's backoff delay, or returns early when the
// context is cancelled.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.Delay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
