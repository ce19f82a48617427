package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worksets/internal/workset"
	"github.com/mesh-intelligence/worksets/pkg/types"
)

// nullHost satisfies types.Host for registry-only contexts.
type nullHost struct{}

func (nullHost) OpenResource(locator string) (types.Handle, error) {
	return types.Handle{HandleID: "h", Locator: locator}, nil
}
func (nullHost) PersistResource(types.Handle) error  { return nil }
func (nullHost) CloseResource(types.Handle) error    { return nil }
func (nullHost) FocusResource(string) error          { return nil }
func (nullHost) IsResourceVisible(types.Handle) bool { return true }

func attachedStore(t *testing.T, backend string) Store {
	t.Helper()
	cfg := types.Config{Backend: backend, DataDir: t.TempDir()}
	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Attach(cfg))
	t.Cleanup(func() { s.Detach() })
	return s
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(types.Config{Backend: "postgres"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestStoreLifecycle(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := types.Config{Backend: backend, DataDir: t.TempDir()}
			s, err := New(cfg)
			require.NoError(t, err)

			_, err = s.LoadSets()
			assert.ErrorIs(t, err, types.ErrStoreDetached)

			require.NoError(t, s.Attach(cfg))
			assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)

			require.NoError(t, s.Detach())
			require.NoError(t, s.Detach(), "detach is idempotent")

			err = s.SaveSets(nil)
			assert.ErrorIs(t, err, types.ErrStoreDetached)
		})
	}
}

func TestLoadSetsEmptyStore(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := attachedStore(t, backend)

			records, err := s.LoadSets()
			require.NoError(t, err, "missing definitions are not an error")
			assert.Empty(t, records)

			state, err := s.LoadActivation()
			require.NoError(t, err)
			assert.Empty(t, state)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := attachedStore(t, backend)

			ctx := workset.New(nullHost{}, nil)
			require.NoError(t, ctx.Define("work", []string{"/p/a.txt", "/p/b.txt"}, "/p/a.txt",
				[]string{"echo start", "date"}, []string{"echo stop"}))
			require.NoError(t, ctx.Define("notes", []string{"/n/todo.md"}, "", nil, nil))
			require.NoError(t, ctx.Define("scratch", nil, "", nil, nil))

			require.NoError(t, Persist(ctx, s))

			fresh := workset.New(nullHost{}, nil)
			require.NoError(t, Hydrate(fresh, s))

			assert.Equal(t, ctx.AllNames(), fresh.AllNames(), "listing order survives the round trip")
			for _, name := range ctx.AllNames() {
				want, err := ctx.Lookup(name)
				require.NoError(t, err)
				got, err := fresh.Lookup(name)
				require.NoError(t, err)

				assert.Equal(t, want.Name, got.Name)
				assert.Equal(t, want.Locators, got.Locators, name)
				assert.Equal(t, want.DefaultSelection, got.DefaultSelection, name)
				assert.Equal(t, want.OnApply.Source, got.OnApply.Source, name)
				assert.Equal(t, want.OnRemove.Source, got.OnRemove.Source, name)
			}
		})
	}
}

func TestActivationRoundTrip(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := attachedStore(t, backend)

			ctx := workset.New(nullHost{}, nil)
			require.NoError(t, ctx.Define("work", []string{"/p/a.txt", "/p/b.txt"}, "", nil, nil))
			_, err := ctx.Activate("work")
			require.NoError(t, err)

			require.NoError(t, Persist(ctx, s))

			fresh := workset.New(nullHost{}, nil)
			require.NoError(t, Hydrate(fresh, s))

			assert.True(t, fresh.IsActive("work"))
			want, _ := ctx.ActiveHandles("work")
			got, _ := fresh.ActiveHandles("work")
			assert.Len(t, got, 2)
			assert.Equal(t, want[0].Locator, got[0].Locator)
			assert.Equal(t, want[0].HandleID, got[0].HandleID)
		})
	}
}

func TestSaveOverwritesPriorContent(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := attachedStore(t, backend)

			require.NoError(t, s.SaveSets([]Record{
				{Name: "old", Locators: []string{"/old"}},
				{Name: "gone", Locators: []string{"/gone"}},
			}))
			require.NoError(t, s.SaveSets([]Record{
				{Name: "new", Locators: []string{"/new"}},
			}))

			records, err := s.LoadSets()
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "new", records[0].Name)
		})
	}
}

func TestLoadSetsPreservesOrder(t *testing.T) {
	for _, backend := range []string{types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := attachedStore(t, backend)

			saved := []Record{
				{Name: "third", Locators: []string{"/3"}},
				{Name: "second", Locators: []string{"/2"}},
				{Name: "first", Locators: []string{"/1"}},
			}
			require.NoError(t, s.SaveSets(saved))

			records, err := s.LoadSets()
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, "third", records[0].Name)
			assert.Equal(t, "second", records[1].Name)
			assert.Equal(t, "first", records[2].Name)
		})
	}
}
