// Config loading for the worksets CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyShell          = "host.shell"
	cfgKeyOpenCommand    = "host.open_command"
	cfgKeyPersistCommand = "host.persist_command"
	cfgKeyCloseCommand   = "host.close_command"
	cfgKeyFocusCommand   = "host.focus_command"

	defaultBackend = "jsonl"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Worksets CLI configuration

# Storage backend: jsonl or sqlite
backend: jsonl

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Host command templates. {path} is replaced with the resource locator.
# Empty commands are no-ops; opening still verifies the path exists.
host:
  # shell: /bin/sh
  # open_command: ""
  # persist_command: ""
  # close_command: ""
  # focus_command: ""
`

// defaultViper returns a viper instance carrying only the defaults, for use
// before any config file is loaded.
func defaultViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	return v
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := defaultViper()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
