// Root command for the worksets CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/worksets/internal/paths"
	"github.com/mesh-intelligence/worksets/pkg/worksets"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// loadedConfig holds the viper instance loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var loadedConfig = defaultViper()

var rootCmd = &cobra.Command{
	Use:     "worksets",
	Short:   "Worksets manages named, reusable groups of files and directories",
	Long: `Worksets manages named, reusable groups of file and directory paths.
Each workset carries an ordered locator list, an optional default selection
focused after activation, and shell hooks run on activation and deactivation.
Definitions and activation state persist in a local data directory.`,
	Version:       worksets.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.worksets-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(addLocatorCmd)
	rootCmd.AddCommand(setDefaultCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
	rootCmd.AddCommand(deactivateAllCmd)
	rootCmd.AddCommand(saveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > WORKSETS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > WORKSETS_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, loadedConfig.GetString(cfgKeyDataDir))
}
