// Package workset implements the set registry and its activation
// lifecycle. A Context bundles the registry and the activation state into
// one process-scoped object; callers construct isolated instances rather
// than sharing globals, which keeps tests independent.
package workset

import (
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// Context holds the set registry and the activation state. All mutation is
// synchronous and single-threaded from the core's viewpoint; callers that
// need concurrent access must serialize per set name themselves.
type Context struct {
	host    types.Host
	compile types.ActionCompiler

	sets  map[string]*types.Set
	names []string // Known names, most recently defined first.

	// active maps an activated set name to its recorded handles, one per
	// locator in locator order. Presence in this map is the sole source of
	// truth for "is this set active".
	active map[string][]types.Handle
}

// New creates an empty Context bound to the given host. compile builds hook
// closures from stored source at definition time; nil means hooks are
// stored but never executed (useful for inspection-only callers and tests).
func New(host types.Host, compile types.ActionCompiler) *Context {
	return &Context{
		host:    host,
		compile: compile,
		sets:    make(map[string]*types.Set),
		active:  make(map[string][]types.Handle),
	}
}
