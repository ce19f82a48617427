// Show command prints a single workset definition.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one workset definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}
		defer st.Detach()

		set, err := ctx.Lookup(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(viewOf(ctx, set))
		}

		status := "inactive"
		if ctx.IsActive(set.Name) {
			status = "Applied"
		}
		fmt.Printf("%s (%s)\n", set.Name, status)
		for _, locator := range set.Locators {
			fmt.Printf("    %s\n", locator)
		}
		if set.DefaultSelection != "" {
			fmt.Printf("default: %s\n", set.DefaultSelection)
		}
		if len(set.OnApply.Source) > 0 {
			fmt.Printf("on-apply: %s\n", strings.Join(set.OnApply.Source, "; "))
		}
		if len(set.OnRemove.Source) > 0 {
			fmt.Printf("on-remove: %s\n", strings.Join(set.OnRemove.Source, "; "))
		}
		return nil
	},
}
