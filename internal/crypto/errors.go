package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when decryption fails for any reason:
	// wrong key, wrong IV, tampered ciphertext, or a bad GCM tag. The cause
	// is intentionally not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)
