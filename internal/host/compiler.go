package host

import (
	"fmt"
	"os/exec"
)

// ShellCompiler returns an ActionCompiler that runs each hook source
// statement through shell -c, stopping at the first failure. An empty
// shell falls back to /bin/sh.
func ShellCompiler(shell string) func(source []string) func() error {
	if shell == "" {
		shell = defaultShell
	}
	return func(source []string) func() error {
		statements := append([]string(nil), source...)
		return func() error {
			for _, stmt := range statements {
				if err := exec.Command(shell, "-c", stmt).Run(); err != nil {
					return fmt.Errorf("running %q: %w", stmt, err)
				}
			}
			return nil
		}
	}
}
