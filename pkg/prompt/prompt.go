package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForValue prompts the user for a value, returning defaultValue on empty input.
	PromptForValue(label, defaultValue string) (string, error)

	// PromptForPassword prompts the user for a password with echo disabled.
	PromptForPassword(label string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewPrompt creates a new Prompt instance reading stdin and writing prompts to stderr.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stderr,
		fd:     int(os.Stdin.Fd()),
	}
}

// PromptForValue prompts the user for a value, returning defaultValue on empty input.
func (p *realPrompt) PromptForValue(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [default: %s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", errors.Wrap(err, "failed to read user input")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}

	return input, nil
}

// PromptForPassword prompts the user for a password with echo disabled.
func (p *realPrompt) PromptForPassword(label string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return "", ErrNotATerminal
	}

	fmt.Fprintf(p.out, "%s: ", label)
	password, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	if len(password) == 0 {
		return "", ErrEmptyValue
	}

	return string(password), nil
}
