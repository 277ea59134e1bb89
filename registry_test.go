package coreexec

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abortFatal(t *testing.T) func() {
	return func() { t.Fatal("unexpected abort") }
}

func flagWaker(flag *atomic.Bool) Waker {
	return Waker{ready: flag}
}

func TestRegistry_InsertRemove(t *testing.T) {
	r := NewRegistry(2, abortFatal(t))

	var flag1, flag2 atomic.Bool
	k1 := r.Insert(flagWaker(&flag1))
	k2 := r.Insert(flagWaker(&flag2))
	assert.NotEqual(t, k1, k2)

	r.Remove(k1)
	// slot reusable after removal
	k3 := r.Insert(flagWaker(&flag1))
	assert.Equal(t, k1, k3)

	r.Remove(k2)
	r.Remove(k3)
}

func TestRegistry_InsertBeyondCapacityAborts(t *testing.T) {
	aborted := false
	r := NewRegistry(1, func() { aborted = true })

	var flag atomic.Bool
	r.Insert(flagWaker(&flag))
	r.Insert(flagWaker(&flag))

	assert.True(t, aborted)
}

func TestRegistry_NotifyOne_WakesFirstLive(t *testing.T) {
	r := NewRegistry(3, abortFatal(t))

	var f1, f2 atomic.Bool
	r.Insert(flagWaker(&f1))
	r.Insert(flagWaker(&f2))

	woke := r.NotifyOne()
	require.True(t, woke)
	assert.True(t, f1.Load())
	assert.False(t, f2.Load())

	// entry stays present (callback cleared) until the task re-polls and removes it.
	woke = r.NotifyOne()
	require.True(t, woke)
	assert.True(t, f2.Load())

	assert.False(t, r.NotifyOne())
}

func TestRegistry_NotifyAny_SkipsWhenNotificationInFlight(t *testing.T) {
	r := NewRegistry(2, abortFatal(t))

	var f1, f2 atomic.Bool
	k1 := r.Insert(flagWaker(&f1))
	r.Insert(flagWaker(&f2))

	assert.True(t, r.NotifyAny())
	assert.True(t, f1.Load())

	// a notification is already in flight (k1's callback cleared, entry still present)
	assert.False(t, r.NotifyAny())
	assert.False(t, f2.Load())

	r.Remove(k1)
	assert.True(t, r.NotifyAny())
	assert.True(t, f2.Load())
}

func TestRegistry_Cancel_WithLiveCallback(t *testing.T) {
	r := NewRegistry(2, abortFatal(t))

	var f1 atomic.Bool
	k1 := r.Insert(flagWaker(&f1))

	propagated := r.Cancel(k1)
	assert.False(t, propagated)
	assert.False(t, f1.Load())
	assert.Equal(t, 0, r.used)
}

func TestRegistry_Cancel_PropagatesPendingNotification(t *testing.T) {
	r := NewRegistry(2, abortFatal(t))

	var f1, f2 atomic.Bool
	k1 := r.Insert(flagWaker(&f1))
	r.Insert(flagWaker(&f2))

	require.True(t, r.NotifyOne()) // k1's callback cleared, f1 woken, entry still present

	propagated := r.Cancel(k1)
	assert.True(t, propagated)
	assert.True(t, f2.Load())
}
