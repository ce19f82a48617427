package workset

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

// fakeHost records every capability call and can be told to fail specific
// locators. The call log captures cross-capability ordering.
type fakeHost struct {
	log []string // "open:<loc>", "persist:<loc>", "close:<loc>", "focus:<loc>"

	failOpen    map[string]bool
	failPersist map[string]bool
	failClose   map[string]bool
	hidden      map[string]bool

	nextID int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		failOpen:    make(map[string]bool),
		failPersist: make(map[string]bool),
		failClose:   make(map[string]bool),
		hidden:      make(map[string]bool),
	}
}

func (f *fakeHost) OpenResource(locator string) (types.Handle, error) {
	if f.failOpen[locator] {
		return types.Handle{}, errors.New("open refused")
	}
	f.nextID++
	f.log = append(f.log, "open:"+locator)
	return types.Handle{
		HandleID: fmt.Sprintf("h-%d", f.nextID),
		Locator:  locator,
		OpenedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeHost) PersistResource(h types.Handle) error {
	f.log = append(f.log, "persist:"+h.Locator)
	if f.failPersist[h.Locator] {
		return errors.New("persist refused")
	}
	return nil
}

func (f *fakeHost) CloseResource(h types.Handle) error {
	f.log = append(f.log, "close:"+h.Locator)
	if f.failClose[h.Locator] {
		return errors.New("close refused")
	}
	return nil
}

func (f *fakeHost) FocusResource(locator string) error {
	f.log = append(f.log, "focus:"+locator)
	return nil
}

func (f *fakeHost) IsResourceVisible(h types.Handle) bool {
	return !f.hidden[h.Locator]
}

// calls returns the log entries with the given prefix, in order.
func (f *fakeHost) calls(prefix string) []string {
	var out []string
	for _, entry := range f.log {
		if len(entry) > len(prefix) && entry[:len(prefix)+1] == prefix+":" {
			out = append(out, entry[len(prefix)+1:])
		}
	}
	return out
}

// logCompiler is an ActionCompiler whose compiled closures append a marker
// to the host log, so hook ordering relative to opens/closes is observable.
func logCompiler(f *fakeHost, fail map[string]bool) types.ActionCompiler {
	return func(source []string) func() error {
		statements := append([]string(nil), source...)
		return func() error {
			for _, stmt := range statements {
				f.log = append(f.log, "hook:"+stmt)
				if fail != nil && fail[stmt] {
					return fmt.Errorf("hook %q failed", stmt)
				}
			}
			return nil
		}
	}
}
