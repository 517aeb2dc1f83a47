// Package zkpaste provides a Go client SDK for zkpaste, a zero-knowledge
// paste-sharing service.
//
// Pastes are encrypted locally with AES-256-GCM before upload; the server
// only ever stores opaque ciphertext. The key (or, for password-protected
// pastes, the PBKDF2 salt) and IV are embedded in the share URL fragment,
// which browsers never transmit, so the secret material travels only from
// creator to viewer.
//
// Basic usage:
//
//	client, err := zkpaste.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	paste, err := client.CreatePaste(ctx, "hello, world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("share:", paste.ShareURL)
//
//	content, err := client.ViewPaste(ctx, paste.ShareURL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(content.Text)
//
// Password-protected pastes derive the key from a password instead of
// embedding it:
//
//	paste, err := client.CreatePaste(ctx, secret, zkpaste.WithPassword("s3cret"))
//
// Viewing such a paste needs the password, either directly
// (zkpaste.WithViewPassword) or interactively
// (zkpaste.WithPasswordPrompt(zkpaste.TerminalPasswordPrompt())).
//
// When the server has proof-of-work enabled, CreatePaste transparently
// fetches and solves the challenge before submitting; bound the cost with
// a context deadline.
package zkpaste
