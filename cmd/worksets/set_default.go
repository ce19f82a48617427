// Set-default command sets the locator focused after activation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setDefaultCmd = &cobra.Command{
	Use:   "set-default <name> <locator>",
	Short: "Set the workset's default selection",
	Long: `Set-default names the resource focused after activation. Membership in
the workset's locator list is not checked; a selection that resolves to
nothing simply means no focus happens.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		if err := ctx.SetDefaultSelection(args[0], args[1]); err != nil {
			st.Detach()
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Printf("Default selection for %s: %s\n", args[0], args[1])
		return nil
	},
}
