package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCompilerRunsStatementsInOrder(t *testing.T) {
	dir := t.TempDir()
	compile := ShellCompiler("")

	run := compile([]string{
		"touch " + filepath.Join(dir, "first"),
		"touch " + filepath.Join(dir, "second"),
	})
	require.NoError(t, run())

	assert.FileExists(t, filepath.Join(dir, "first"))
	assert.FileExists(t, filepath.Join(dir, "second"))
}

func TestShellCompilerStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	compile := ShellCompiler("/bin/sh")

	run := compile([]string{
		"exit 1",
		"touch " + filepath.Join(dir, "never"),
	})
	require.Error(t, run())

	assert.NoFileExists(t, filepath.Join(dir, "never"))
}

func TestShellCompilerEmptySource(t *testing.T) {
	run := ShellCompiler("")(nil)
	assert.NoError(t, run())
}
