package types

import "errors"

// Registry and lifecycle errors.
var (
	ErrSetNotFound      = errors.New("set not found")
	ErrSetExists        = errors.New("set already exists")
	ErrSetAlreadyActive = errors.New("set is already active")
	ErrInvalidName      = errors.New("set name must not be empty")
)

// ActionCompiler turns hook source statements into a runnable closure.
// The compiled closure takes no arguments and reports the first failing
// statement. Compilation happens once, at definition time; the source is
// what gets persisted.
type ActionCompiler func(source []string) func() error

// Action is a user-supplied lifecycle hook: the verbatim source statements
// plus the closure compiled from them. The zero value is a no-op.
type Action struct {
	Source []string `json:"source,omitempty"`

	run func() error
}

// NewAction compiles source into an Action using compile. A nil compiler or
// empty source yields a no-op action that still carries the source.
func NewAction(source []string, compile ActionCompiler) Action {
	a := Action{Source: append([]string(nil), source...)}
	if compile != nil && len(source) > 0 {
		a.run = compile(a.Source)
	}
	return a
}

// Run invokes the compiled closure. No-op actions return nil.
func (a Action) Run() error {
	if a.run == nil {
		return nil
	}
	return a.run()
}

// Set is a named, ordered group of resource locators plus two lifecycle
// hooks and an optional default focus target. Locator order is activation
// order. DefaultSelection is best-effort: it should name one of Locators,
// but membership is not enforced and an unresolved selection simply means
// the post-activation focus step does nothing.
type Set struct {
	Name             string   `json:"name"`
	Locators         []string `json:"locators"`
	DefaultSelection string   `json:"default_selection,omitempty"`
	OnApply          Action   `json:"on_apply,omitempty"`
	OnRemove         Action   `json:"on_remove,omitempty"`
}
