package zkpaste

import (
	"strings"
	"sync"

	"github.com/zkpaste/client-go/internal/api"
	"github.com/zkpaste/client-go/internal/crypto"
)

// Client is the zkpaste client. It is safe for concurrent use: every
// paste operation is independently parameterized and the underlying
// crypto provider is stateless.
type Client struct {
	apiClient *api.Client
	provider  *crypto.Provider
	webOrigin string

	mu     sync.RWMutex
	closed bool
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries >= 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}

	apiClient, err := api.New(cfg.baseURL, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// New creates a new zkpaste client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		retries: -1,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(cfg)
	if err != nil {
		return nil, err
	}

	origin := cfg.webOrigin
	if origin == "" {
		origin = cfg.baseURL
	}
	origin = strings.TrimRight(origin, "/")

	return &Client{
		apiClient: apiClient,
		provider:  crypto.NewProvider(),
		webOrigin: origin,
	}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// WebOrigin returns the origin used for share and delete URLs.
func (c *Client) WebOrigin() string {
	return c.webOrigin
}

// Close closes the client. Further paste operations return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
