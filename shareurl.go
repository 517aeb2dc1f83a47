package zkpaste

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildShareURL constructs a share URL for a paste. The key material
// (raw key or PBKDF2 salt, plus IV) goes into the URL fragment, which
// browsers never send over the network; only the paste id appears in the
// query string.
func BuildShareURL(origin, id, keyB64, ivB64 string) string {
	return fmt.Sprintf("%s/view.html?p=%s#%s:%s",
		strings.TrimRight(origin, "/"), url.QueryEscape(id), keyB64, ivB64)
}

// BuildDeleteURL constructs a delete URL for a paste. The delete token is
// a query parameter: it is server-issued and carries no key material, so
// sending it over the network is fine.
func BuildDeleteURL(origin, id, token string) string {
	return fmt.Sprintf("%s/delete.html?p=%s&token=%s",
		strings.TrimRight(origin, "/"), url.QueryEscape(id), url.QueryEscape(token))
}

// ParseShareURL extracts the paste id and the key and IV material from a
// share URL's fragment. The fragment format is "<keyOrSalt>:<iv>", both
// base64url.
func ParseShareURL(raw string) (id, key, iv string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrInvalidShareURL, err)
	}

	id = u.Query().Get("p")
	if id == "" {
		return "", "", "", fmt.Errorf("%w: missing paste id", ErrInvalidShareURL)
	}

	key, iv, ok := strings.Cut(u.Fragment, ":")
	if !ok || key == "" || iv == "" {
		return "", "", "", fmt.Errorf("%w: missing key material fragment", ErrInvalidShareURL)
	}

	return id, key, iv, nil
}

// ParseDeleteURL extracts the paste id and delete token from a delete URL.
func ParseDeleteURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidDeleteURL, err)
	}

	q := u.Query()
	id = q.Get("p")
	token = q.Get("token")
	if id == "" || token == "" {
		return "", "", fmt.Errorf("%w: missing paste id or token", ErrInvalidDeleteURL)
	}

	return id, token, nil
}
