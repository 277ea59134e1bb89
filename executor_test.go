package coreexec

import (
	"sync"
	"testing"

	"github.com/joeycumines/go-coreexec/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHooks is a minimal platform.Hooks double for executor-level tests:
// WaitForEvent simply counts how many times the executor had to sleep,
// and Abort fails the test instead of exiting the process.
type testHooks struct {
	t          *testing.T
	mu         sync.Mutex
	sleeps     int
	abortCalls int
	allowAbort bool
}

func newTestHooks(t *testing.T) *testHooks {
	return &testHooks{t: t}
}

func (h *testHooks) Abort() {
	h.mu.Lock()
	h.abortCalls++
	allow := h.allowAbort
	h.mu.Unlock()
	if !allow {
		h.t.Fatal("unexpected abort")
	}
}

func (h *testHooks) SignalEventReady() {}

func (h *testHooks) WaitForEvent() {
	h.mu.Lock()
	h.sleeps++
	h.mu.Unlock()
}

var _ platform.Hooks = (*testHooks)(nil)

func TestBlockOn_ReturnsForegroundValue(t *testing.T) {
	ex := NewExecutor(WithHooks(newTestHooks(t)))

	result := BlockOn(ex, func(tk *Task) int {
		return 42
	})

	assert.Equal(t, 42, result)
}

func TestBlockOn_DrivesSpawnedTasksToCompletionOfForeground(t *testing.T) {
	ex := NewExecutor(WithHooks(newTestHooks(t)), WithTaskCapacity(4))

	var ticks int
	done := make(chan struct{})
	ex.Spawn(func(tk *Task) {
		for {
			ticks++
			Yield(tk)
			select {
			case <-done:
				// real firmware tasks never return; this is a hosted test
				// convenience only, left spinning after signaling.
			default:
			}
		}
	})

	result := BlockOn(ex, func(tk *Task) int {
		for i := 0; i < 3; i++ {
			Yield(tk)
		}
		close(done)
		return ticks
	})

	assert.GreaterOrEqual(t, result, 3)
}

func TestBlockOn_ReentrantCallAborts(t *testing.T) {
	hooks := newTestHooks(t)
	hooks.allowAbort = true
	ex := NewExecutor(WithHooks(hooks))

	BlockOn(ex, func(tk *Task) int {
		BlockOn(ex, func(tk2 *Task) int { return 0 })
		return 0
	})

	assert.Equal(t, 1, hooks.abortCalls)
}

func TestExecutor_SpawnBeyondCapacityAborts(t *testing.T) {
	hooks := newTestHooks(t)
	hooks.allowAbort = true
	ex := NewExecutor(WithHooks(hooks), WithTaskCapacity(1))

	ex.Spawn(func(tk *Task) { <-make(chan struct{}) })
	ex.Spawn(func(tk *Task) { <-make(chan struct{}) })

	require.Equal(t, 1, hooks.abortCalls)
}
