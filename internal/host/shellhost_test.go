package host

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func touchFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestOpenResource(t *testing.T) {
	dir := t.TempDir()
	path := touchFile(t, dir, "a.txt")
	h := NewShellHost(types.HostConfig{}, discardLogger())

	handle, err := h.OpenResource(path)
	require.NoError(t, err)
	assert.Equal(t, path, handle.Locator)
	assert.NotEmpty(t, handle.HandleID)
	assert.False(t, handle.OpenedAt.IsZero())
	assert.True(t, handle.OK())
}

func TestOpenResourceMissingPath(t *testing.T) {
	h := NewShellHost(types.HostConfig{}, discardLogger())

	_, err := h.OpenResource(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestOpenResourceRunsOpenCommand(t *testing.T) {
	dir := t.TempDir()
	path := touchFile(t, dir, "a.txt")
	h := NewShellHost(types.HostConfig{OpenCommand: "cp {path} {path}.opened"}, discardLogger())

	_, err := h.OpenResource(path)
	require.NoError(t, err)
	assert.FileExists(t, path+".opened")
}

func TestOpenResourceFailingCommand(t *testing.T) {
	dir := t.TempDir()
	path := touchFile(t, dir, "a.txt")
	h := NewShellHost(types.HostConfig{OpenCommand: "exit 3"}, discardLogger())

	_, err := h.OpenResource(path)
	require.Error(t, err)
}

func TestPersistAndCloseCommands(t *testing.T) {
	dir := t.TempDir()
	path := touchFile(t, dir, "a.txt")
	h := NewShellHost(types.HostConfig{
		PersistCommand: "cp {path} {path}.saved",
		CloseCommand:   "cp {path} {path}.closed",
	}, discardLogger())

	handle := types.Handle{HandleID: "h-1", Locator: path}
	require.NoError(t, h.PersistResource(handle))
	require.NoError(t, h.CloseResource(handle))
	assert.FileExists(t, path+".saved")
	assert.FileExists(t, path+".closed")
}

func TestEmptyTemplatesAreNoops(t *testing.T) {
	h := NewShellHost(types.HostConfig{}, discardLogger())
	handle := types.Handle{HandleID: "h-1", Locator: "/nonexistent"}

	assert.NoError(t, h.PersistResource(handle))
	assert.NoError(t, h.CloseResource(handle))
	assert.NoError(t, h.FocusResource("/nonexistent"))
}

func TestIsResourceVisible(t *testing.T) {
	dir := t.TempDir()
	path := touchFile(t, dir, "a.txt")
	h := NewShellHost(types.HostConfig{}, discardLogger())

	assert.True(t, h.IsResourceVisible(types.Handle{Locator: path}))
	assert.False(t, h.IsResourceVisible(types.Handle{Locator: filepath.Join(dir, "gone.txt")}))
}
