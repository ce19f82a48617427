// Define command upserts a full workset definition in one go.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	defineLocators []string
	defineDefault  string
	defineOnApply  []string
	defineOnRemove []string
)

var defineCmd = &cobra.Command{
	Use:   "define <name>",
	Short: "Define or replace a workset",
	Long: `Define inserts a workset or replaces an existing one entirely.
Locators are opened in the order given. Hook statements run through the
configured shell on activation (--on-apply) and deactivation (--on-remove).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		if err := ctx.Define(args[0], defineLocators, defineDefault, defineOnApply, defineOnRemove); err != nil {
			st.Detach()
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Printf("Defined workset: %s (%d locators)\n", args[0], len(defineLocators))
		return nil
	},
}

func init() {
	defineCmd.Flags().StringArrayVar(&defineLocators, "locator", nil, "resource locator, in activation order (repeatable)")
	defineCmd.Flags().StringVar(&defineDefault, "default", "", "locator to focus after activation")
	defineCmd.Flags().StringArrayVar(&defineOnApply, "on-apply", nil, "shell statement run after activation (repeatable)")
	defineCmd.Flags().StringArrayVar(&defineOnRemove, "on-remove", nil, "shell statement run after deactivation (repeatable)")
}
