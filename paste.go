package zkpaste

import (
	"context"
	"time"

	"github.com/zkpaste/client-go/internal/api"
	"github.com/zkpaste/client-go/internal/crypto"
	"github.com/zkpaste/client-go/pow"
)

// Paste is the result of a successful creation. ShareURL is the only
// channel carrying the decryption key; the client does not retain key
// material after returning it.
type Paste struct {
	// ID is the server-assigned paste id.
	ID string
	// DeleteToken authorizes deletion of the paste.
	DeleteToken string
	// ShareURL embeds the key material in its fragment.
	ShareURL string
	// DeleteURL embeds the delete token in its query string.
	DeleteURL string
	// ExpiresAt is when the server will drop the paste.
	ExpiresAt time.Time
}

// CreatePaste encrypts text locally and stores the ciphertext. With
// WithPassword the key is derived from the password; otherwise a fresh
// random key is generated and embedded in the returned share URL.
//
// When the server has proof-of-work enabled, the challenge is solved
// before submission. Solving can take arbitrarily long at high
// difficulty; bound it with a context deadline.
func (c *Client) CreatePaste(ctx context.Context, text string, opts ...CreateOption) (*Paste, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &createConfig{
		expiresIn: defaultExpiry,
		mime:      defaultMime,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Encrypt before anything touches the network.
	var result *crypto.EncryptionResult
	var err error
	if cfg.password != "" {
		result, err = c.provider.EncryptWithPassword(text, cfg.password)
	} else {
		result, err = c.provider.Encrypt(text)
	}
	if err != nil {
		return nil, err
	}

	// Fetch the proof-of-work challenge; nil means PoW is disabled.
	challenge, err := c.apiClient.GetPowChallenge(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	var solution *api.PowSolution
	if challenge != nil {
		solver := pow.NewSolver()
		sol, err := solver.Solve(ctx, pow.Challenge{
			Challenge:  challenge.Challenge,
			Difficulty: challenge.Difficulty,
		})
		if err != nil {
			return nil, err
		}
		solution = &api.PowSolution{Challenge: sol.Challenge, Nonce: sol.Nonce}
	}

	expireAt := cfg.expireAt
	if expireAt.IsZero() {
		expireAt = time.Now().Add(cfg.expiresIn)
	}

	resp, err := c.apiClient.CreatePaste(ctx, &api.CreatePasteRequest{
		CT: result.Ciphertext,
		IV: result.IV,
		Meta: api.PasteMeta{
			ExpireTs:     expireAt.Unix(),
			SingleView:   cfg.singleView,
			ViewsAllowed: cfg.viewsAllowed,
			Mime:         cfg.mime,
		},
		Pow: solution,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Paste{
		ID:          resp.ID,
		DeleteToken: resp.DeleteToken,
		ShareURL:    BuildShareURL(c.webOrigin, resp.ID, result.Key, result.IV),
		DeleteURL:   BuildDeleteURL(c.webOrigin, resp.ID, resp.DeleteToken),
		ExpiresAt:   expireAt,
	}, nil
}

// DeletePaste deletes a paste using its id and delete token.
func (c *Client) DeletePaste(ctx context.Context, id, token string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	return wrapError(c.apiClient.DeletePaste(ctx, id, token))
}

// DeleteByURL deletes a paste given its delete URL.
func (c *Client) DeleteByURL(ctx context.Context, deleteURL string) error {
	id, token, err := ParseDeleteURL(deleteURL)
	if err != nil {
		return err
	}
	return c.DeletePaste(ctx, id, token)
}
