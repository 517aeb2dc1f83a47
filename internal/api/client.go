package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP API client. The paste service requires no
// authentication for creation and retrieval; anti-abuse is handled by the
// proof-of-work challenge instead of API keys.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the number of retries for transient failures.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Client) {
		c.retry.RetryOn = statusCodes
	}
}

// New creates a new API client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// do performs a JSON request and decodes the response into result.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	_, err := c.doStatus(ctx, method, path, body, result)
	return err
}

// doStatus is do plus the response status code, for endpoints where the
// status itself carries meaning (204 on the proof-of-work endpoint).
func (c *Client) doStatus(ctx context.Context, method, path string, body, result interface{}) (int, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path

	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return 0, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			netErr := &NetworkError{Err: err, URL: url, Attempt: attempt}
			if attempt >= c.retry.MaxRetries {
				return 0, netErr
			}
			if err := c.retry.Wait(ctx, attempt); err != nil {
				return 0, err
			}
			continue
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			resp.Body.Close()
			if err := c.retry.Wait(ctx, attempt); err != nil {
				return 0, err
			}
			continue
		}

		if resp.StatusCode >= 400 {
			defer resp.Body.Close()
			return resp.StatusCode, parseErrorResponse(resp)
		}

		if result != nil && resp.StatusCode != http.StatusNoContent {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				resp.Body.Close()
				return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		resp.Body.Close()

		return resp.StatusCode, nil
	}
}
