// Save command rewrites the definitions file on demand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist all workset definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}
		fmt.Println("Saved workset definitions")
		return nil
	},
}
