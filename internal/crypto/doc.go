// Package crypto implements the client-side cryptography for zkpaste.
// Every paste is encrypted locally before it leaves the process, so the
// server only ever stores opaque ciphertext.
//
// # Algorithm Suite
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for paste content. Provides confidentiality and integrity in one
//     operation; any modification of ciphertext, key, or IV causes
//     decryption to fail rather than produce wrong plaintext.
//
//   - PBKDF2-HMAC-SHA-256 (RFC 8018): Key derivation for password-protected
//     pastes. The iteration count (100000), salt size (16 bytes) and derived
//     key size (32 bytes) are wire constants; changing any of them breaks
//     decryption of previously shared links.
//
// # Security Model
//
// The Provider is stateless. Each encryption mints a fresh key (or salt)
// and IV, so two pastes never share key material and ciphertexts cannot be
// correlated through key reuse. Key and IV travel only inside the share
// URL fragment, which browsers never transmit to servers.
//
// AES-GCM nonces MUST be unique per key. The Provider guarantees this by
// never reusing a key: every call draws both key and nonce fresh from the
// configured random source.
//
// Decryption failures are deliberately opaque. Whether the key was wrong,
// the IV was wrong, or the ciphertext was tampered with, callers see the
// same ErrDecryptionFailed. The viewer uses that single signal to fall
// back to its password prompt without leaking which check failed.
//
// # Base64 Encoding
//
// All wire values (keys, salts, IVs, ciphertexts) use URL-safe base64
// without padding (RFC 4648 §5) via [Encode] and [Decode]. Decode is a
// total function: it tolerates attacker-controlled or truncated URL
// fragments by degrading to best-effort bytes instead of returning an
// error, leaving the GCM authentication tag to reject garbage.
package crypto
