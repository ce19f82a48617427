package workset

import (
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// Define upserts a set definition by name. An existing definition is
// replaced entirely, not merged, and keeps its position in the name list;
// a new name is prepended so AllNames lists the most recently defined set
// first. Hook sources are compiled once, here.
func (c *Context) Define(name string, locators []string, defaultSelection string, onApplySource, onRemoveSource []string) error {
	if name == "" {
		return types.ErrInvalidName
	}

	set := &types.Set{
		Name:             name,
		Locators:         append([]string(nil), locators...),
		DefaultSelection: defaultSelection,
		OnApply:          types.NewAction(onApplySource, c.compile),
		OnRemove:         types.NewAction(onRemoveSource, c.compile),
	}

	if _, known := c.sets[name]; !known {
		c.names = append([]string{name}, c.names...)
	}
	c.sets[name] = set
	return nil
}

// CreateEmpty inserts a definition with no locators and no-op hooks.
// Returns ErrSetExists if the name is already known.
func (c *Context) CreateEmpty(name string) error {
	if name == "" {
		return types.ErrInvalidName
	}
	if _, known := c.sets[name]; known {
		return types.ErrSetExists
	}
	return c.Define(name, nil, "", nil, nil)
}

// AddLocator appends locator to the named definition's locator list.
func (c *Context) AddLocator(name, locator string) error {
	set, known := c.sets[name]
	if !known {
		return types.ErrSetNotFound
	}
	set.Locators = append(set.Locators, locator)
	return nil
}

// SetDefaultSelection sets the resource to focus after activation.
// Membership in the locator list is not validated; an unresolved selection
// means the focus step silently does nothing.
func (c *Context) SetDefaultSelection(name, locator string) error {
	set, known := c.sets[name]
	if !known {
		return types.ErrSetNotFound
	}
	set.DefaultSelection = locator
	return nil
}

// Lookup returns the definition for name, or ErrSetNotFound.
func (c *Context) Lookup(name string) (*types.Set, error) {
	set, known := c.sets[name]
	if !known {
		return nil, types.ErrSetNotFound
	}
	return set, nil
}

// AllNames returns the known set names, most recently defined first.
func (c *Context) AllNames() []string {
	return append([]string(nil), c.names...)
}
