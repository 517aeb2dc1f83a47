package zkpaste

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.zkpaste.io"

	// defaultExpiry is applied when the creator sets no expiry.
	defaultExpiry = 24 * time.Hour

	defaultMime = "text/plain"

	// defaultMaxPasswordAttempts bounds the interactive retry loop when a
	// keyed decrypt fails and the viewer falls back to password mode.
	defaultMaxPasswordAttempts = 3
)

// clientConfig holds configuration for the client. retries is -1 until
// set so that WithRetries(0) can disable retrying.
type clientConfig struct {
	baseURL    string
	webOrigin  string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
}

// createConfig holds configuration for paste creation.
type createConfig struct {
	password     string
	expiresIn    time.Duration
	expireAt     time.Time
	singleView   bool
	viewsAllowed *int
	mime         string
}

// viewConfig holds configuration for paste viewing.
type viewConfig struct {
	password    string
	prompt      PromptFunc
	maxAttempts int
}

// Option configures the client.
type Option func(*clientConfig)

// CreateOption configures paste creation.
type CreateOption func(*createConfig)

// ViewOption configures paste viewing.
type ViewOption func(*viewConfig)

// WithBaseURL sets the paste-storage API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithWebOrigin sets the origin used when building share and delete URLs.
// Defaults to the API base URL, which is right when the web frontend and
// the API share a host.
func WithWebOrigin(origin string) Option {
	return func(c *clientConfig) {
		c.webOrigin = origin
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithPassword protects the paste with a password. The encryption key is
// derived from the password and a random salt; only the salt travels in
// the share URL, so the link alone is not enough to read the paste.
func WithPassword(password string) CreateOption {
	return func(c *createConfig) {
		c.password = password
	}
}

// WithExpiresIn sets the paste lifetime relative to now. Default: 24h.
func WithExpiresIn(d time.Duration) CreateOption {
	return func(c *createConfig) {
		c.expiresIn = d
	}
}

// WithExpireAt sets an absolute expiry time, overriding WithExpiresIn.
func WithExpireAt(t time.Time) CreateOption {
	return func(c *createConfig) {
		c.expireAt = t
	}
}

// WithSingleView marks the paste for deletion after its first view.
func WithSingleView() CreateOption {
	return func(c *createConfig) {
		c.singleView = true
	}
}

// WithViewsAllowed caps the number of times the paste can be viewed.
func WithViewsAllowed(n int) CreateOption {
	return func(c *createConfig) {
		c.viewsAllowed = &n
	}
}

// WithMime declares the content type of the plaintext. Default: text/plain.
func WithMime(mime string) CreateOption {
	return func(c *createConfig) {
		c.mime = mime
	}
}

// WithViewPassword supplies the password for a password-protected paste
// up front, skipping the interactive prompt.
func WithViewPassword(password string) ViewOption {
	return func(c *viewConfig) {
		c.password = password
	}
}

// WithPasswordPrompt sets the callback used to collect a password when
// keyed decryption fails. The callback receives the 1-based attempt
// number; see TerminalPasswordPrompt for an interactive implementation.
func WithPasswordPrompt(fn PromptFunc) ViewOption {
	return func(c *viewConfig) {
		c.prompt = fn
	}
}

// WithMaxPasswordAttempts bounds the password retry loop. Default: 3.
// The bound is per ViewPaste call; failed attempts never invalidate the
// paste server-side, since decryption is entirely local.
func WithMaxPasswordAttempts(n int) ViewOption {
	return func(c *viewConfig) {
		c.maxAttempts = n
	}
}
