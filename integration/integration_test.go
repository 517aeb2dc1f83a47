//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	zkpaste "github.com/zkpaste/client-go"
)

var baseURL string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	baseURL = os.Getenv("ZKPASTE_URL")
	if baseURL == "" {
		os.Stderr.WriteString("Skipping integration tests: ZKPASTE_URL not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *zkpaste.Client {
	t.Helper()

	client, err := zkpaste.New(
		zkpaste.WithBaseURL(baseURL),
		zkpaste.WithTimeout(30*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestCreateAndViewPaste(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	paste, err := client.CreatePaste(ctx, "integration round trip",
		zkpaste.WithExpiresIn(5*time.Minute))
	if err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}
	t.Cleanup(func() {
		client.DeleteByURL(context.Background(), paste.DeleteURL)
	})

	content, err := client.ViewPaste(ctx, paste.ShareURL)
	if err != nil {
		t.Fatalf("ViewPaste() error = %v", err)
	}
	if content.Text != "integration round trip" {
		t.Errorf("ViewPaste() = %q, want round-tripped plaintext", content.Text)
	}
}

func TestPasswordProtectedPaste(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	paste, err := client.CreatePaste(ctx, "password protected",
		zkpaste.WithPassword("integration-pw"),
		zkpaste.WithExpiresIn(5*time.Minute))
	if err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}
	t.Cleanup(func() {
		client.DeleteByURL(context.Background(), paste.DeleteURL)
	})

	if _, err := client.ViewPaste(ctx, paste.ShareURL); !errors.Is(err, zkpaste.ErrPasswordRequired) {
		t.Errorf("ViewPaste() without password: error = %v, want ErrPasswordRequired", err)
	}

	content, err := client.ViewPaste(ctx, paste.ShareURL,
		zkpaste.WithViewPassword("integration-pw"))
	if err != nil {
		t.Fatalf("ViewPaste() with password: error = %v", err)
	}
	if content.Text != "password protected" {
		t.Errorf("ViewPaste() = %q, want plaintext", content.Text)
	}
}

func TestDeletePaste(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	paste, err := client.CreatePaste(ctx, "to be deleted",
		zkpaste.WithExpiresIn(5*time.Minute))
	if err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}

	if err := client.DeleteByURL(ctx, paste.DeleteURL); err != nil {
		t.Fatalf("DeleteByURL() error = %v", err)
	}

	if _, err := client.ViewPaste(ctx, paste.ShareURL); !errors.Is(err, zkpaste.ErrPasteNotFound) {
		t.Errorf("ViewPaste() after delete: error = %v, want ErrPasteNotFound", err)
	}
}

func TestSingleViewPaste(t *testing.T) {
	client := newClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	paste, err := client.CreatePaste(ctx, "read once",
		zkpaste.WithSingleView(),
		zkpaste.WithExpiresIn(5*time.Minute))
	if err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}

	content, err := client.ViewPaste(ctx, paste.ShareURL)
	if err != nil {
		t.Fatalf("first ViewPaste() error = %v", err)
	}
	if !content.SingleView {
		t.Error("SingleView = false, want true")
	}

	if _, err := client.ViewPaste(ctx, paste.ShareURL); !errors.Is(err, zkpaste.ErrPasteNotFound) {
		t.Errorf("second ViewPaste() error = %v, want ErrPasteNotFound", err)
	}
}
