// Deactivate commands close a workset's resources and run its remove hook.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [name]",
	Short: "Deactivate a workset",
	Long: `Deactivate persists and closes every resource of an active workset in
recorded order, then runs its remove hook. Failures on individual
resources are reported but do not stop the rest from closing. With no
name, prompts to choose among the active worksets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		name, err := chooseSet(ctx.AllNames(), args, ctx.IsActive, "Deactivate which workset?")
		if err != nil {
			st.Detach()
			return err
		}

		deactErr := ctx.Deactivate(name)
		if errors.Is(deactErr, types.ErrSetNotFound) {
			st.Detach()
			return deactErr
		}

		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Printf("Deactivated %s\n", name)
		if deactErr != nil {
			fmt.Fprintln(os.Stderr, "warning:", deactErr)
		}
		return nil
	},
}

var deactivateAllCmd = &cobra.Command{
	Use:   "deactivate-all",
	Short: "Deactivate every active workset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, st, err := openContext()
		if err != nil {
			return err
		}

		deactErr := ctx.DeactivateAll()

		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		fmt.Println("Deactivated all worksets")
		if deactErr != nil {
			fmt.Fprintln(os.Stderr, "warning:", deactErr)
		}
		return nil
	},
}
