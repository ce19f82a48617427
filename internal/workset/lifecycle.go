package workset

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

// Activate opens every locator of the named set in order, records the
// resulting handles, runs the set's apply hook, and focuses the default
// selection when one is configured.
//
// A failed open is recorded as a handle with Err set and does not stop the
// remaining locators from opening; open failures and a failing hook are
// joined into the returned error after the activation state is already
// committed. Unknown names fail with ErrSetNotFound and already-active
// names with ErrSetAlreadyActive, both before any side effect.
func (c *Context) Activate(name string) ([]types.Handle, error) {
	set, known := c.sets[name]
	if !known {
		return nil, types.ErrSetNotFound
	}
	if _, isActive := c.active[name]; isActive {
		return nil, types.ErrSetAlreadyActive
	}

	handles := make([]types.Handle, 0, len(set.Locators))
	var errs []error
	for _, locator := range set.Locators {
		h, err := c.host.OpenResource(locator)
		if err != nil {
			h = types.Handle{Locator: locator, Err: err.Error()}
			errs = append(errs, fmt.Errorf("open %s: %w", locator, err))
		}
		handles = append(handles, h)
	}

	// Commit the state transition before the hook runs so a failing hook
	// never leaves the activation state inconsistent.
	c.active[name] = handles

	if err := set.OnApply.Run(); err != nil {
		errs = append(errs, fmt.Errorf("apply hook for %s: %w", name, err))
	}

	if set.DefaultSelection != "" {
		// Best-effort: an unresolved selection is silently ignored.
		_ = c.host.FocusResource(set.DefaultSelection)
	}

	return handles, errors.Join(errs...)
}

// Deactivate persists and closes every handle recorded for the named set,
// in recorded order, then runs the set's remove hook. Handles that failed
// to open are skipped. Per-handle failures do not stop the remaining
// closes; they are joined into the returned error. The activation entry is
// removed before the hook runs. A name that is not active fails with
// ErrSetNotFound.
func (c *Context) Deactivate(name string) error {
	handles, isActive := c.active[name]
	if !isActive {
		return types.ErrSetNotFound
	}

	var errs []error
	for _, h := range handles {
		if !h.OK() {
			continue
		}
		if err := c.host.PersistResource(h); err != nil {
			errs = append(errs, fmt.Errorf("persist %s: %w", h.Locator, err))
		}
		if err := c.host.CloseResource(h); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", h.Locator, err))
		}
	}

	delete(c.active, name)

	if set, known := c.sets[name]; known {
		if err := set.OnRemove.Run(); err != nil {
			errs = append(errs, fmt.Errorf("remove hook for %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// DeactivateAll deactivates every currently active set. Failures in one
// set do not prevent the rest from deactivating; all errors are joined.
func (c *Context) DeactivateAll() error {
	var errs []error
	for _, name := range c.names {
		if _, isActive := c.active[name]; !isActive {
			continue
		}
		if err := c.Deactivate(name); err != nil {
			errs = append(errs, fmt.Errorf("deactivate %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// IsActive reports whether the named set is currently active.
func (c *Context) IsActive(name string) bool {
	_, isActive := c.active[name]
	return isActive
}

// ActiveHandles returns the handles recorded for an active set, in locator
// order, or false when the set is not active.
func (c *Context) ActiveHandles(name string) ([]types.Handle, bool) {
	handles, isActive := c.active[name]
	if !isActive {
		return nil, false
	}
	return append([]types.Handle(nil), handles...), true
}

// Snapshot returns a copy of the activation state, keyed by set name.
func (c *Context) Snapshot() map[string][]types.Handle {
	state := make(map[string][]types.Handle, len(c.active))
	for name, handles := range c.active {
		state[name] = append([]types.Handle(nil), handles...)
	}
	return state
}

// Restore replaces the activation state with a previously captured
// snapshot. Entries for names absent from the registry are dropped.
func (c *Context) Restore(state map[string][]types.Handle) {
	c.active = make(map[string][]types.Handle, len(state))
	for name, handles := range state {
		if _, known := c.sets[name]; !known {
			continue
		}
		c.active[name] = append([]types.Handle(nil), handles...)
	}
}
