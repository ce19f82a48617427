package types

import "errors"

// Config holds backend selection and parameters for Store.Attach plus the
// shell host command templates.
type Config struct {
	Backend string     `json:"backend" yaml:"backend"`
	DataDir string     `json:"data_dir" yaml:"data_dir"`
	Host    HostConfig `json:"host" yaml:"host"`
}

// HostConfig configures the shell-backed Host. Command templates may
// reference {path}, replaced with the resource locator before execution.
// Empty templates make the corresponding primitive a no-op.
type HostConfig struct {
	Shell          string `json:"shell" yaml:"shell"` // Defaults to /bin/sh.
	OpenCommand    string `json:"open_command" yaml:"open_command"`
	PersistCommand string `json:"persist_command" yaml:"persist_command"`
	CloseCommand   string `json:"close_command" yaml:"close_command"`
	FocusCommand   string `json:"focus_command" yaml:"focus_command"`
}

// Supported backend names.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONL:  true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
