package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreatePaste stores an encrypted paste and returns its id and delete token.
func (c *Client) CreatePaste(ctx context.Context, req *CreatePasteRequest) (*CreatePasteResponse, error) {
	var result CreatePasteResponse
	if err := c.do(ctx, http.MethodPost, "/api/pastes", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPaste retrieves an encrypted paste by id.
func (c *Client) GetPaste(ctx context.Context, id string) (*PasteResponse, error) {
	path := fmt.Sprintf("/api/pastes/%s", url.PathEscape(id))
	var result PasteResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePaste deletes a paste using its delete token. The token travels in
// the query string; unlike the encryption key it is not secret from the
// server, which issued it.
func (c *Client) DeletePaste(ctx context.Context, id, token string) error {
	path := fmt.Sprintf("/api/pastes/%s?token=%s", url.PathEscape(id), url.QueryEscape(token))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetPowChallenge fetches a proof-of-work challenge for paste creation.
// A 204 response means proof-of-work is disabled server-side; that is
// reported as (nil, nil), not an error, and the caller submits pow: null.
func (c *Client) GetPowChallenge(ctx context.Context) (*PowChallenge, error) {
	var result PowChallenge
	status, err := c.doStatus(ctx, http.MethodGet, "/api/pow", nil, &result)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &result, nil
}
