package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a password into an AES-256 key using
// PBKDF2-HMAC-SHA-256. Iteration count, salt size and key size are wire
// constants shared with every other zkpaste client; see constants.go.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, AESKeySize, sha256.New)
}
