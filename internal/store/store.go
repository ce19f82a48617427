// Package store persists workset definitions and activation state.
// Two backends implement the same contract: JSONL files written atomically
// and a SQLite database. Both round-trip the five definition fields (name,
// locators, default selection, apply source, remove source) losslessly.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/worksets/internal/workset"
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// Record is the durable form of a single set definition. Hook code is
// persisted as verbatim source statements, never in compiled form, so
// reloading re-derives equivalent closures.
type Record struct {
	Name             string   `json:"name"`
	Locators         []string `json:"locators"`
	DefaultSelection string   `json:"default_selection,omitempty"`
	OnApply          []string `json:"on_apply,omitempty"`
	OnRemove         []string `json:"on_remove,omitempty"`
}

// Store is the backend-agnostic persistence contract. Callers attach with
// a Config, load or save, and detach when done. SaveSets expects records in
// listing order (most recently defined first) and LoadSets returns them the
// same way.
type Store interface {
	// Attach connects the store to the backend described by config and
	// creates the data directory if needed. Returns ErrAlreadyAttached if
	// called while attached.
	Attach(config types.Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// load/save operations return ErrStoreDetached.
	Detach() error

	LoadSets() ([]Record, error)
	SaveSets(records []Record) error

	LoadActivation() (map[string][]types.Handle, error)
	SaveActivation(state map[string][]types.Handle) error
}

// New returns an unattached store for the backend named in config.
func New(config types.Config) (Store, error) {
	switch config.Backend {
	case types.BackendJSONL:
		return &jsonlStore{}, nil
	case types.BackendSQLite:
		return &sqliteStore{}, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

// Hydrate loads stored definitions and activation state into ctx. Records
// are defined oldest-first so the registry's prepend-on-define rebuilds the
// stored listing order exactly. A store with no definitions yields an empty
// registry, not an error.
func Hydrate(ctx *workset.Context, s Store) error {
	records, err := s.LoadSets()
	if err != nil {
		return fmt.Errorf("load sets: %w", err)
	}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if err := ctx.Define(r.Name, r.Locators, r.DefaultSelection, r.OnApply, r.OnRemove); err != nil {
			return fmt.Errorf("define %s: %w", r.Name, err)
		}
	}

	state, err := s.LoadActivation()
	if err != nil {
		return fmt.Errorf("load activation: %w", err)
	}
	ctx.Restore(state)
	return nil
}

// Persist writes every known definition and the activation snapshot from
// ctx back to the store. In-memory state is untouched on failure.
func Persist(ctx *workset.Context, s Store) error {
	names := ctx.AllNames()
	records := make([]Record, 0, len(names))
	for _, name := range names {
		set, err := ctx.Lookup(name)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", name, err)
		}
		records = append(records, Record{
			Name:             set.Name,
			Locators:         set.Locators,
			DefaultSelection: set.DefaultSelection,
			OnApply:          set.OnApply.Source,
			OnRemove:         set.OnRemove.Source,
		})
	}

	if err := s.SaveSets(records); err != nil {
		return fmt.Errorf("save sets: %w", err)
	}
	if err := s.SaveActivation(ctx.Snapshot()); err != nil {
		return fmt.Errorf("save activation: %w", err)
	}
	return nil
}
