package zkpaste

import (
	"context"
	"errors"
	"time"

	"github.com/zkpaste/client-go/internal/crypto"
)

// PasteContent is a decrypted paste.
type PasteContent struct {
	// Text is the decrypted plaintext.
	Text string
	// Mime is the content type declared at creation.
	Mime string
	// ExpiresAt is when the server will drop the paste.
	ExpiresAt time.Time
	// SingleView reports whether the paste is deleted after one view.
	SingleView bool
	// ViewsLeft is the number of remaining views; nil means unlimited.
	ViewsLeft *int
}

// ViewPaste fetches and decrypts a paste from its share URL.
//
// Keyed decryption is attempted first, treating the fragment's first field
// as a raw AES key. If that fails the paste is assumed to be
// password-protected (the fragment then carries a PBKDF2 salt; the wire
// format has no explicit mode flag) and the password path runs: the
// configured password is tried once, then the prompt is asked up to the
// attempt bound. Failed attempts are local and never invalidate the paste.
func (c *Client) ViewPaste(ctx context.Context, shareURL string, opts ...ViewOption) (*PasteContent, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &viewConfig{
		maxAttempts: defaultMaxPasswordAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	id, key, iv, err := ParseShareURL(shareURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.GetPaste(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	in := crypto.DecryptionInput{
		Ciphertext: resp.CT,
		Key:        key,
		IV:         iv,
	}

	content := func(text string) *PasteContent {
		return &PasteContent{
			Text:       text,
			Mime:       resp.Meta.Mime,
			ExpiresAt:  time.Unix(resp.Meta.ExpireTs, 0),
			SingleView: resp.Meta.SingleView,
			ViewsLeft:  resp.ViewsLeft,
		}
	}

	// Keyed path: the fragment carries the raw key.
	if text, err := c.provider.Decrypt(in); err == nil {
		return content(text), nil
	}

	// Password path: the fragment carries the salt.
	attempt := 1
	if cfg.password != "" {
		text, err := c.provider.DecryptWithPassword(in, cfg.password)
		if err == nil {
			return content(text), nil
		}
		if !errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, err
		}
		if cfg.prompt == nil {
			// A fixed wrong password cannot improve by retrying.
			return nil, ErrDecryptionFailed
		}
		attempt++
	}

	if cfg.prompt == nil {
		return nil, ErrPasswordRequired
	}

	for ; attempt <= cfg.maxAttempts; attempt++ {
		password, err := cfg.prompt(attempt)
		if err != nil {
			return nil, err
		}

		text, err := c.provider.DecryptWithPassword(in, password)
		if err == nil {
			return content(text), nil
		}
		if !errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, err
		}
	}

	return nil, ErrTooManyAttempts
}
