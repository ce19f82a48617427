// Activate command opens a workset's resources and runs its apply hook.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worksets/internal/host"
	"github.com/mesh-intelligence/worksets/pkg/types"
)

var activateCmd = &cobra.Command{
	Use:   "activate [name]",
	Short: "Activate a workset",
	Long: `Activate opens every locator of the named workset in order, runs its
apply hook, and focuses the default selection when one is set. A locator
that fails to open is reported but does not stop the rest from opening.
With no name, prompts to choose among the inactive worksets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		name, err := chooseSet(ctx.AllNames(), args, func(n string) bool { return !ctx.IsActive(n) }, "Activate which workset?")
		if err != nil {
			st.Detach()
			return err
		}

		handles, actErr := ctx.Activate(name)
		if errors.Is(actErr, types.ErrSetNotFound) || errors.Is(actErr, types.ErrSetAlreadyActive) {
			st.Detach()
			return actErr
		}

		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		opened := 0
		for _, h := range handles {
			if h.OK() {
				opened++
			}
		}
		fmt.Printf("Activated %s (%d of %d resources opened)\n", name, opened, len(handles))
		if actErr != nil {
			fmt.Fprintln(os.Stderr, "warning:", actErr)
		}
		return nil
	},
}

// chooseSet picks the target set name: the explicit argument when given,
// otherwise an interactive choice among candidates passing keep.
func chooseSet(names []string, args []string, keep func(string) bool, label string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	options := make([]string, 0, len(names))
	for _, n := range names {
		if keep(n) {
			options = append(options, n)
		}
	}
	return host.PromptChoice(os.Stdin, os.Stdout, label, options)
}
