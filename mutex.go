package coreexec

import "github.com/joeycumines/go-coreexec/platform"

// Mutex provides exclusive access to a protected value across tasks on
// the same executor, per spec.md Section 4.6. There is deliberately no
// fairness guarantee beyond NotifyAny's single-waiter wakeup: the next
// lock holder is whichever waiting task the executor happens to poll
// first after being woken.
type Mutex[T any] struct {
	value   T
	held    bool
	waiters *Registry
	hooks   platform.Hooks
}

// NewMutex creates a Mutex guarding value. waiterCap bounds how many
// tasks may simultaneously block in Lock before the registry aborts.
func NewMutex[T any](value T, hooks platform.Hooks, waiterCap int) *Mutex[T] {
	return &Mutex[T]{
		value:   value,
		waiters: NewRegistry(waiterCap, hooks.Abort),
		hooks:   hooks,
	}
}

// Guard grants exclusive access to the value a Mutex protects. Release
// must be called exactly once to hand the lock back.
type Guard[T any] struct {
	m *Mutex[T]
}

// Value returns a pointer to the protected value, valid until Release.
func (g *Guard[T]) Value() *T {
	return &g.m.value
}

// Release clears the held flag and wakes at most one waiter.
func (g *Guard[T]) Release() {
	g.m.held = false
	g.m.waiters.NotifyAny()
	g.m.hooks.SignalEventReady()
}

// TryLock attempts a non-blocking lock acquisition, returning ErrLockHeld
// if the mutex is already held.
func (m *Mutex[T]) TryLock() (*Guard[T], error) {
	if m.held {
		return nil, ErrLockHeld
	}
	m.held = true
	return &Guard[T]{m: m}, nil
}

// Lock acquires the mutex, suspending t until it is available.
func (m *Mutex[T]) Lock(t *Task) *Guard[T] {
	for {
		if g, err := m.TryLock(); err == nil {
			return g
		}
		key := m.waiters.Insert(t.waker())
		t.ctl.suspend()
		m.waiters.Remove(key)
	}
}
