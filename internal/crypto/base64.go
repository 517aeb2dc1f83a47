package crypto

import (
	"encoding/base64"
)

// Encode maps raw bytes to URL-safe base64 without padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode maps URL-safe base64 back to bytes. It is a total function:
// padding is optional, standard-alphabet input is accepted, and characters
// outside the alphabet are dropped rather than rejected. Malformed input
// yields best-effort bytes, never an error. Decode sits in the path of
// attacker-controlled URL fragments, so availability wins over strictness;
// garbage output is caught downstream by the GCM authentication tag.
func Decode(s string) []byte {
	if data, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return data
	}

	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			clean = append(clean, c)
		case c == '+':
			clean = append(clean, '-')
		case c == '/':
			clean = append(clean, '_')
		}
	}
	// A single trailing character encodes no complete byte.
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}

	data, err := base64.RawURLEncoding.DecodeString(string(clean))
	if err != nil {
		return nil
	}
	return data
}
