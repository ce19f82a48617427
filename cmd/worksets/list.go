// List command renders the registry and activation summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all worksets with activation and visibility state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}
		defer st.Detach()

		if flagJSON {
			views := make([]setView, 0)
			for _, name := range ctx.AllNames() {
				set, err := ctx.Lookup(name)
				if err != nil {
					return err
				}
				views = append(views, viewOf(ctx, set))
			}
			return printJSON(views)
		}

		report := ctx.Report()
		if report == "" {
			fmt.Println("No worksets defined.")
			return nil
		}
		fmt.Print(report)
		return nil
	},
}
