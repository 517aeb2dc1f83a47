package api

// PasteMeta is the unencrypted metadata stored alongside a paste. It is
// visible to the server by design; everything secret lives in the
// ciphertext and the share URL fragment.
type PasteMeta struct {
	// ExpireTs is the expiry time in unix seconds.
	ExpireTs int64 `json:"expireTs"`
	// SingleView marks the paste for deletion after its first view.
	SingleView bool `json:"singleView"`
	// ViewsAllowed caps the number of views; nil means unlimited.
	ViewsAllowed *int `json:"viewsAllowed"`
	// Mime is the declared content type of the plaintext.
	Mime string `json:"mime"`
}

// PowSolution is a solved proof-of-work challenge submitted with a
// creation request.
type PowSolution struct {
	Challenge string `json:"challenge"`
	Nonce     uint64 `json:"nonce"`
}

// PowChallenge is an unsolved proof-of-work puzzle issued by the server.
type PowChallenge struct {
	Challenge  string `json:"challenge"`
	Difficulty int    `json:"difficulty"`
}

// CreatePasteRequest is the body of POST /api/pastes. Pow is nil when the
// server has proof-of-work disabled; the field still serializes as an
// explicit null.
type CreatePasteRequest struct {
	CT   string       `json:"ct"`
	IV   string       `json:"iv"`
	Meta PasteMeta    `json:"meta"`
	Pow  *PowSolution `json:"pow"`
}

// CreatePasteResponse is the server's answer to a successful creation.
type CreatePasteResponse struct {
	ID          string `json:"id"`
	DeleteToken string `json:"deleteToken"`
}

// PasteResponse is the body of GET /api/pastes/{id}.
type PasteResponse struct {
	CT        string    `json:"ct"`
	IV        string    `json:"iv"`
	Meta      PasteMeta `json:"meta"`
	ViewsLeft *int      `json:"viewsLeft"`
}
