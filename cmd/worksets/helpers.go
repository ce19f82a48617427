// Shared helpers for worksets CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/worksets/internal/host"
	"github.com/mesh-intelligence/worksets/internal/store"
	"github.com/mesh-intelligence/worksets/internal/workset"
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// buildConfig assembles the effective Config from flags and config.yaml.
func buildConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	return types.Config{
		Backend: loadedConfig.GetString(cfgKeyBackend),
		DataDir: dataDir,
		Host: types.HostConfig{
			Shell:          loadedConfig.GetString(cfgKeyShell),
			OpenCommand:    loadedConfig.GetString(cfgKeyOpenCommand),
			PersistCommand: loadedConfig.GetString(cfgKeyPersistCommand),
			CloseCommand:   loadedConfig.GetString(cfgKeyCloseCommand),
			FocusCommand:   loadedConfig.GetString(cfgKeyFocusCommand),
		},
	}, nil
}

// newLogger builds the CLI logger writing to stderr. --verbose lowers the
// level to debug.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openContext attaches the configured store and hydrates a workset Context
// from it. The caller must detach the returned store (directly or through
// persistAndDetach) when done.
func openContext() (*workset.Context, store.Store, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, nil, err
	}

	st, err := store.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := st.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	shellHost := host.NewShellHost(cfg.Host, newLogger())
	ctx := workset.New(shellHost, host.ShellCompiler(cfg.Host.Shell))

	if err := store.Hydrate(ctx, st); err != nil {
		st.Detach()
		return nil, nil, fmt.Errorf("hydrate registry: %w", err)
	}
	return ctx, st, nil
}

// persistAndDetach writes the registry and activation state back to the
// store, then detaches. In-memory state stays intact on save failure.
func persistAndDetach(ctx *workset.Context, st store.Store) error {
	saveErr := store.Persist(ctx, st)
	detachErr := st.Detach()
	return errors.Join(saveErr, detachErr)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// setView is the JSON output shape for a single set.
type setView struct {
	Name             string         `json:"name"`
	Locators         []string       `json:"locators"`
	DefaultSelection string         `json:"default_selection,omitempty"`
	OnApply          []string       `json:"on_apply,omitempty"`
	OnRemove         []string       `json:"on_remove,omitempty"`
	Active           bool           `json:"active"`
	Handles          []types.Handle `json:"handles,omitempty"`
}

// viewOf builds the JSON view of a named set from ctx.
func viewOf(ctx *workset.Context, set *types.Set) setView {
	handles, active := ctx.ActiveHandles(set.Name)
	return setView{
		Name:             set.Name,
		Locators:         set.Locators,
		DefaultSelection: set.DefaultSelection,
		OnApply:          set.OnApply.Source,
		OnRemove:         set.OnRemove.Source,
		Active:           active,
		Handles:          handles,
	}
}
