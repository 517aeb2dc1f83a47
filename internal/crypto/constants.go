package crypto

const (
	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce (IV) in bytes.
	// 96 bits is GCM's recommended nonce size; other sizes degrade security.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// SaltSize is the size of a PBKDF2 salt in bytes.
	SaltSize = 16
	// PBKDF2Iterations is the PBKDF2-HMAC-SHA-256 iteration count.
	PBKDF2Iterations = 100000
)

// AlgorithmAESGCM is the algorithm tag recorded on encryption results.
// The same tag is used for keyed and password-derived pastes; the two are
// distinguished by the viewer's decrypt-then-retry flow, not by the tag.
const AlgorithmAESGCM = "AES-256-GCM"
