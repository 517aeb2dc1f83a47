package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// EncryptionResult is the output of a single encryption. All fields are
// URL-safe base64 without padding. Key carries the raw AES key in keyed
// mode and the PBKDF2 salt in password mode; the two share the wire slot
// and are told apart by the viewer's retry flow.
type EncryptionResult struct {
	Ciphertext string
	Key        string
	IV         string
	Algorithm  string
}

// DecryptionInput carries the three base64url values a decryption needs.
// Algorithm is informational and may be empty.
type DecryptionInput struct {
	Ciphertext string
	Key        string
	IV         string
	Algorithm  string
}

// Provider performs paste encryption and decryption. It is stateless:
// every operation draws fresh key material from its random source and
// nothing is cached between calls.
type Provider struct {
	rand io.Reader
}

// NewProvider returns a Provider backed by crypto/rand.
func NewProvider() *Provider {
	return &Provider{rand: rand.Reader}
}

// NewProviderWithRand returns a Provider drawing randomness from r.
// Intended for deterministic tests.
func NewProviderWithRand(r io.Reader) *Provider {
	return &Provider{rand: r}
}

// GenerateKey produces a fresh 32-byte AES-256 key.
func (p *Provider) GenerateKey() ([]byte, error) {
	return p.randomBytes(AESKeySize, "key")
}

// GenerateIV produces a fresh 12-byte GCM nonce.
func (p *Provider) GenerateIV() ([]byte, error) {
	return p.randomBytes(AESNonceSize, "iv")
}

// GenerateSalt produces a fresh 16-byte PBKDF2 salt.
func (p *Provider) GenerateSalt() ([]byte, error) {
	return p.randomBytes(SaltSize, "salt")
}

func (p *Provider) randomBytes(n int, what string) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(p.rand, b); err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", what, err)
	}
	return b, nil
}

// Encrypt encrypts plaintext under a freshly generated key and IV.
// The raw key bytes are returned in the result so the caller can embed
// them in the share URL fragment; that fragment is the key's only storage.
// Empty plaintext is valid.
func (p *Provider) Encrypt(plaintext string) (*EncryptionResult, error) {
	key, err := p.GenerateKey()
	if err != nil {
		return nil, err
	}

	iv, err := p.GenerateIV()
	if err != nil {
		return nil, err
	}

	ciphertext, err := encryptAESGCM(key, iv, []byte(plaintext))
	if err != nil {
		return nil, err
	}

	return &EncryptionResult{
		Ciphertext: Encode(ciphertext),
		Key:        Encode(key),
		IV:         Encode(iv),
		Algorithm:  AlgorithmAESGCM,
	}, nil
}

// Decrypt reverses Encrypt. A successful return proves the key, IV and
// ciphertext are mutually consistent and unmodified; any mismatch yields
// ErrDecryptionFailed with no further detail.
func (p *Provider) Decrypt(in DecryptionInput) (string, error) {
	plaintext, err := decryptAESGCM(Decode(in.Key), Decode(in.IV), Decode(in.Ciphertext))
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// EncryptWithPassword encrypts plaintext under a key derived from the
// password via PBKDF2. The random salt occupies the result's Key field.
func (p *Provider) EncryptWithPassword(plaintext, password string) (*EncryptionResult, error) {
	salt, err := p.GenerateSalt()
	if err != nil {
		return nil, err
	}

	iv, err := p.GenerateIV()
	if err != nil {
		return nil, err
	}

	key := DeriveKey(password, salt)

	ciphertext, err := encryptAESGCM(key, iv, []byte(plaintext))
	if err != nil {
		return nil, err
	}

	return &EncryptionResult{
		Ciphertext: Encode(ciphertext),
		Key:        Encode(salt),
		IV:         Encode(iv),
		Algorithm:  AlgorithmAESGCM,
	}, nil
}

// DecryptWithPassword reverses EncryptWithPassword, re-deriving the key
// from the password and the salt carried in the Key field. Wrong password,
// wrong salt and tampered ciphertext all look the same to the caller.
func (p *Provider) DecryptWithPassword(in DecryptionInput, password string) (string, error) {
	key := DeriveKey(password, Decode(in.Key))

	plaintext, err := decryptAESGCM(key, Decode(in.IV), Decode(in.Ciphertext))
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
