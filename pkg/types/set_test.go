package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionZeroValueIsNoop(t *testing.T) {
	var a Action
	assert.NoError(t, a.Run())
	assert.Empty(t, a.Source)
}

func TestNewActionCompilesOnce(t *testing.T) {
	compileCalls := 0
	runCalls := 0
	compile := func(source []string) func() error {
		compileCalls++
		return func() error {
			runCalls++
			return nil
		}
	}

	a := NewAction([]string{"echo one", "echo two"}, compile)
	assert.Equal(t, 1, compileCalls, "compilation happens at definition time")

	require.NoError(t, a.Run())
	require.NoError(t, a.Run())
	assert.Equal(t, 1, compileCalls)
	assert.Equal(t, 2, runCalls)
	assert.Equal(t, []string{"echo one", "echo two"}, a.Source)
}

func TestNewActionPropagatesRunError(t *testing.T) {
	boom := errors.New("boom")
	a := NewAction([]string{"fail"}, func([]string) func() error {
		return func() error { return boom }
	})
	assert.ErrorIs(t, a.Run(), boom)
}

func TestNewActionNilCompilerKeepsSource(t *testing.T) {
	a := NewAction([]string{"echo kept"}, nil)
	assert.NoError(t, a.Run())
	assert.Equal(t, []string{"echo kept"}, a.Source)
}

func TestNewActionCopiesSource(t *testing.T) {
	src := []string{"echo a"}
	a := NewAction(src, nil)
	src[0] = "mutated"
	assert.Equal(t, []string{"echo a"}, a.Source)
}

func TestHandleOK(t *testing.T) {
	assert.True(t, Handle{HandleID: "id", Locator: "/p/a.txt"}.OK())
	assert.False(t, Handle{Locator: "/p/a.txt", Err: "no such file"}.OK())
}
