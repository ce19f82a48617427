// Package main provides the worksets CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/worksets/internal/host"
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "worksets:", err)
		if isUserError(err) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}

// isUserError reports whether err was caused by user input rather than a
// system failure, for exit-code selection.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrSetNotFound) ||
		errors.Is(err, types.ErrSetExists) ||
		errors.Is(err, types.ErrSetAlreadyActive) ||
		errors.Is(err, types.ErrInvalidName) ||
		errors.Is(err, host.ErrInvalidChoice) ||
		errors.Is(err, host.ErrNoOptions)
}
