// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize worksets configuration and storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and default config.yaml already exist by the time a
		// command runs; attaching the store creates the data directory.
		ctx, st, err := openContext()
		if err != nil {
			return err
		}
		if err := persistAndDetach(ctx, st); err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized worksets (config: %s, data: %s)\n", configDir, dataDir)
		return nil
	},
}
