// Command testhelper drives the SDK from the command line so other
// zkpaste implementations can round-trip pastes against this one. All
// output is JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	zkpaste "github.com/zkpaste/client-go"
	"github.com/zkpaste/client-go/pow"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <create|view|delete|solve-pow> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "create":
		createPaste(ctx, newClient())
	case "view":
		if len(os.Args) < 3 {
			fatal("usage: testhelper view <share-url>")
		}
		viewPaste(ctx, newClient(), os.Args[2])
	case "delete":
		if len(os.Args) < 3 {
			fatal("usage: testhelper delete <delete-url>")
		}
		deletePaste(ctx, newClient(), os.Args[2])
	case "solve-pow":
		if len(os.Args) < 4 {
			fatal("usage: testhelper solve-pow <challenge> <difficulty>")
		}
		solvePow(ctx, os.Args[2], os.Args[3])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newClient() *zkpaste.Client {
	var opts []zkpaste.Option
	if url := os.Getenv("ZKPASTE_URL"); url != "" {
		opts = append(opts, zkpaste.WithBaseURL(url))
	}

	client, err := zkpaste.New(opts...)
	if err != nil {
		fatal("create client: %v", err)
	}
	return client
}

// PasteOutput is the JSON shape other SDK test suites parse.
type PasteOutput struct {
	ID        string `json:"id"`
	ShareURL  string `json:"shareUrl"`
	DeleteURL string `json:"deleteUrl"`
	ExpiresAt string `json:"expiresAt"`
}

func createPaste(ctx context.Context, client *zkpaste.Client) {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var opts []zkpaste.CreateOption
	if password := os.Getenv("ZKPASTE_PASSWORD"); password != "" {
		opts = append(opts, zkpaste.WithPassword(password))
	}

	paste, err := client.CreatePaste(ctx, string(text), opts...)
	if err != nil {
		fatal("create paste: %v", err)
	}

	out := PasteOutput{
		ID:        paste.ID,
		ShareURL:  paste.ShareURL,
		DeleteURL: paste.DeleteURL,
		ExpiresAt: paste.ExpiresAt.Format(time.RFC3339),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode output: %v", err)
	}
}

func viewPaste(ctx context.Context, client *zkpaste.Client, shareURL string) {
	var opts []zkpaste.ViewOption
	if password := os.Getenv("ZKPASTE_PASSWORD"); password != "" {
		opts = append(opts, zkpaste.WithViewPassword(password))
	}

	content, err := client.ViewPaste(ctx, shareURL, opts...)
	if err != nil {
		fatal("view paste: %v", err)
	}

	out := struct {
		Text       string `json:"text"`
		Mime       string `json:"mime"`
		SingleView bool   `json:"singleView"`
		ViewsLeft  *int   `json:"viewsLeft"`
	}{
		Text:       content.Text,
		Mime:       content.Mime,
		SingleView: content.SingleView,
		ViewsLeft:  content.ViewsLeft,
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode output: %v", err)
	}
}

func deletePaste(ctx context.Context, client *zkpaste.Client, deleteURL string) {
	if err := client.DeleteByURL(ctx, deleteURL); err != nil {
		fatal("delete paste: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(map[string]bool{"success": true})
}

func solvePow(ctx context.Context, challenge, difficulty string) {
	var bits int
	if _, err := fmt.Sscanf(difficulty, "%d", &bits); err != nil {
		fatal("parse difficulty: %v", err)
	}

	solver := pow.NewSolver()
	sol, err := solver.Solve(ctx, pow.Challenge{Challenge: challenge, Difficulty: bits})
	if err != nil {
		fatal("solve: %v", err)
	}

	out := struct {
		Challenge string `json:"challenge"`
		Nonce     uint64 `json:"nonce"`
	}{sol.Challenge, sol.Nonce}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
