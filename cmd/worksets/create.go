// Create command inserts an empty workset definition.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty workset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		if err := ctx.CreateEmpty(args[0]); err != nil {
			st.Detach()
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Printf("Created workset: %s\n", args[0])
		return nil
	},
}
