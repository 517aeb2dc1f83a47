package zkpaste

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptFunc collects a password for a password-protected paste. attempt
// is 1-based; implementations can use it to adjust their message. An
// error aborts the view without consuming further attempts.
type PromptFunc func(attempt int) (string, error)

// TerminalPasswordPrompt returns a PromptFunc that reads the password
// from the controlling terminal with echo disabled. When stdin is piped
// it falls back to /dev/tty so the prompt still reaches the user.
func TerminalPasswordPrompt() PromptFunc {
	return func(attempt int) (string, error) {
		if attempt > 1 {
			fmt.Fprintf(os.Stderr, "Wrong password (attempt %d). ", attempt)
		}
		fmt.Fprint(os.Stderr, "Password: ")

		password, err := readPassword()
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(password), nil
	}
}

func readPassword() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		return term.ReadPassword(fd)
	}

	// Stdin is piped; ask the controlling terminal directly.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot read password: stdin is piped and /dev/tty is not available")
	}
	defer tty.Close()

	return term.ReadPassword(int(tty.Fd()))
}
