package zkpaste

import (
	"errors"
	"testing"
)

func TestBuildShareURL(t *testing.T) {
	got := BuildShareURL("https://zkpaste.io", "abc123", "keyB64", "ivB64")
	want := "https://zkpaste.io/view.html?p=abc123#keyB64:ivB64"
	if got != want {
		t.Errorf("BuildShareURL() = %q, want %q", got, want)
	}

	// Trailing slashes on the origin must not double up.
	got = BuildShareURL("https://zkpaste.io/", "abc123", "k", "v")
	want = "https://zkpaste.io/view.html?p=abc123#k:v"
	if got != want {
		t.Errorf("BuildShareURL() with trailing slash = %q, want %q", got, want)
	}
}

func TestBuildDeleteURL(t *testing.T) {
	got := BuildDeleteURL("https://zkpaste.io", "abc123", "tok/en")
	want := "https://zkpaste.io/delete.html?p=abc123&token=tok%2Fen"
	if got != want {
		t.Errorf("BuildDeleteURL() = %q, want %q", got, want)
	}
}

func TestParseShareURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantID  string
		wantKey string
		wantIV  string
		wantErr bool
	}{
		{
			name:    "valid",
			url:     "https://zkpaste.io/view.html?p=abc123#a1b2c3:d4e5f6",
			wantID:  "abc123",
			wantKey: "a1b2c3",
			wantIV:  "d4e5f6",
		},
		{
			name:    "extra query params",
			url:     "https://zkpaste.io/view.html?utm=x&p=abc#k:v",
			wantID:  "abc",
			wantKey: "k",
			wantIV:  "v",
		},
		{
			name:    "key with base64url chars",
			url:     "https://zkpaste.io/view.html?p=id#ab-_cd:ef-_gh",
			wantID:  "id",
			wantKey: "ab-_cd",
			wantIV:  "ef-_gh",
		},
		{name: "missing id", url: "https://zkpaste.io/view.html#k:v", wantErr: true},
		{name: "missing fragment", url: "https://zkpaste.io/view.html?p=abc", wantErr: true},
		{name: "no separator", url: "https://zkpaste.io/view.html?p=abc#kv", wantErr: true},
		{name: "empty key", url: "https://zkpaste.io/view.html?p=abc#:v", wantErr: true},
		{name: "empty iv", url: "https://zkpaste.io/view.html?p=abc#k:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, key, iv, err := ParseShareURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShareURL) {
					t.Fatalf("ParseShareURL() error = %v, want ErrInvalidShareURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShareURL() error = %v", err)
			}
			if id != tt.wantID || key != tt.wantKey || iv != tt.wantIV {
				t.Errorf("ParseShareURL() = (%q, %q, %q), want (%q, %q, %q)",
					id, key, iv, tt.wantID, tt.wantKey, tt.wantIV)
			}
		})
	}
}

func TestParseDeleteURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "valid",
			url:       "https://zkpaste.io/delete.html?p=abc123&token=tok99",
			wantID:    "abc123",
			wantToken: "tok99",
		},
		{name: "missing token", url: "https://zkpaste.io/delete.html?p=abc", wantErr: true},
		{name: "missing id", url: "https://zkpaste.io/delete.html?token=tok", wantErr: true},
		{name: "no query", url: "https://zkpaste.io/delete.html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := ParseDeleteURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDeleteURL) {
					t.Fatalf("ParseDeleteURL() error = %v, want ErrInvalidDeleteURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeleteURL() error = %v", err)
			}
			if id != tt.wantID || token != tt.wantToken {
				t.Errorf("ParseDeleteURL() = (%q, %q), want (%q, %q)",
					id, token, tt.wantID, tt.wantToken)
			}
		})
	}
}

func TestShareURLRoundTrip(t *testing.T) {
	url := BuildShareURL("https://paste.example.com", "id-1", "KEY", "IV")
	id, key, iv, err := ParseShareURL(url)
	if err != nil {
		t.Fatalf("ParseShareURL(BuildShareURL()) error = %v", err)
	}
	if id != "id-1" || key != "KEY" || iv != "IV" {
		t.Errorf("round trip = (%q, %q, %q), want (id-1, KEY, IV)", id, key, iv)
	}
}
