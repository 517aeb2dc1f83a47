package zkpaste

import (
	"errors"
	"fmt"

	"github.com/zkpaste/client-go/internal/api"
	"github.com/zkpaste/client-go/pow"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrPasteNotFound is returned when a paste does not exist, has expired,
	// or has exhausted its allowed views.
	ErrPasteNotFound = errors.New("paste not found")

	// ErrDecryptionFailed is returned when a paste cannot be decrypted.
	// The cause is deliberately opaque: wrong key, wrong password, and
	// tampered ciphertext are indistinguishable to the caller.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPasswordRequired is returned when keyed decryption fails and no
	// password source was configured for the view.
	ErrPasswordRequired = errors.New("paste is password-protected: password required")

	// ErrTooManyAttempts is returned when the bounded password retry loop
	// is exhausted without a successful decryption.
	ErrTooManyAttempts = errors.New("too many failed password attempts")

	// ErrInvalidShareURL is returned when a share URL is malformed or is
	// missing its key material fragment.
	ErrInvalidShareURL = errors.New("invalid share URL")

	// ErrInvalidDeleteURL is returned when a delete URL is malformed.
	ErrInvalidDeleteURL = errors.New("invalid delete URL")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPowCancelled is returned when a proof-of-work solve is aborted.
	// It aliases the pow package's sentinel so errors.Is matches both.
	ErrPowCancelled = pow.ErrCancelled
)

// ZKPasteError is implemented by all SDK errors.
type ZKPasteError interface {
	error
	ZKPasteError() // marker method
}

// APIError represents an HTTP error from the paste-storage API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// ZKPasteError implements the ZKPasteError interface.
func (e *APIError) ZKPasteError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 404, 410:
		return target == ErrPasteNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ZKPasteError implements the ZKPasteError interface.
func (e *NetworkError) ZKPasteError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
