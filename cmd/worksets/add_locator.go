// Add-locator command appends a locator to an existing workset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addLocatorCmd = &cobra.Command{
	Use:   "add-locator <name> <locator>",
	Short: "Append a locator to a workset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		if err := ctx.AddLocator(args[0], args[1]); err != nil {
			st.Detach()
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Printf("Added %s to %s\n", args[1], args[0])
		return nil
	},
}
