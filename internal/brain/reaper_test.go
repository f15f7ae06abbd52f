package brain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldReap(t *testing.T) {
	assert.True(t, ShouldReap(0, DefaultReapInterval))
	assert.True(t, ShouldReap(3000, DefaultReapInterval))
	assert.False(t, ShouldReap(2999, DefaultReapInterval))
	assert.False(t, ShouldReap(1000, 0))
}

func TestReapDeletesOnlyDeadEntries(t *testing.T) {
	w := newWorld(2000)
	w.creep("alive", 0, at(1, 1))
	egg := w.creep("egg", 0, at(20, 21))
	egg.spawning = true

	ctx, _ := newTestContext(w)
	mem := newFakeMemory("alive", "egg", "dead")
	ctx.Memory = mem
	ctx.Registry.GetOrCreate("dead")

	n, err := ctx.Reap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	keys, _ := mem.Keys(context.Background())
	assert.Equal(t, []string{"alive", "egg"}, keys)

	_, ok := ctx.Registry.Lookup("dead")
	assert.True(t, ok, "the in-process registry is not pruned")
}

func TestReapIsBestEffort(t *testing.T) {
	w := newWorld(1000)
	ctx, logs := newTestContext(w)
	mem := newFakeMemory("a", "b", "c")
	mem.deleteErr["b"] = errors.New("locked")
	ctx.Memory = mem

	n, err := ctx.Reap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, warnings(logs))

	keys, _ := mem.Keys(context.Background())
	assert.Equal(t, []string{"b"}, keys)
}

func TestReapReportsListFailure(t *testing.T) {
	w := newWorld(1000)
	ctx, _ := newTestContext(w)
	mem := newFakeMemory()
	mem.keysErr = errors.New("offline")
	ctx.Memory = mem

	_, err := ctx.Reap(context.Background())
	assert.Error(t, err)
}
