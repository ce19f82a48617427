package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt errors.
var (
	ErrNoOptions     = errors.New("no options to choose from")
	ErrInvalidChoice = errors.New("invalid choice")
)

// PromptChoice presents numbered options on w and reads a selection from r.
// The selection may be an option number or the option text itself. Only the
// interactive CLI entry points use this; the core never prompts.
func PromptChoice(r io.Reader, w io.Writer, label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	fmt.Fprintln(w, label)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprint(w, "> ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading choice: %w", err)
		}
		return "", io.EOF
	}

	input := strings.TrimSpace(scanner.Text())
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("%w: %d", ErrInvalidChoice, n)
		}
		return options[n-1], nil
	}
	for _, opt := range options {
		if opt == input {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, input)
}
