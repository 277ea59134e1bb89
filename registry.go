package coreexec

// Registry is the fixed-capacity waker slab spec.md Section 4.4 describes:
// a table mapping opaque integer keys to optional notification callbacks,
// used by Channel and Mutex to park tasks that are waiting on something.
//
// Registry is foreground-only and therefore unsynchronized, the same way
// the teacher's ChunkedIngress is ("Thread Safety: NOT thread-safe, the
// caller must provide external synchronization") — here external
// synchronization is simply the fact that only one task body runs at a
// time (see control.poll in executor.go).
type Registry struct {
	entries    []registryEntry
	used       int
	notifiable int
	abort      func()
}

type registryEntry struct {
	waker  Waker
	active bool // slot occupied, independent of whether waker is still live
}

// NewRegistry creates a Registry with the given fixed capacity.
func NewRegistry(capacity int, abort func()) *Registry {
	return &Registry{entries: make([]registryEntry, capacity), abort: abort}
}

// Insert stores w at a free slot and returns its key. Aborts if the
// registry is already full (spec.md Section 7: waker-registry insert
// beyond capacity is fatal).
func (r *Registry) Insert(w Waker) int {
	for i := range r.entries {
		if !r.entries[i].active {
			r.entries[i] = registryEntry{waker: w, active: true}
			r.used++
			r.notifiable++
			return i
		}
	}
	r.abort()
	return -1
}

// Remove deletes the entry for key, if present. Used by a task that wakes
// up naturally (not via cancellation) and re-polls successfully.
func (r *Registry) Remove(key int) {
	if !r.valid(key) {
		return
	}
	if !r.entries[key].waker.IsZero() {
		r.notifiable--
	}
	r.entries[key] = registryEntry{}
	r.used--
}

// Cancel handles a waiting task being dropped mid-wait. If the entry still
// holds a live callback, it is simply removed. Otherwise the entry was
// already notified but not yet consumed by its owner; Cancel finds another
// live entry and notifies it instead, so the pending wakeup is not lost.
// It reports whether an alternate entry was notified.
func (r *Registry) Cancel(key int) bool {
	if !r.valid(key) {
		return false
	}
	hadCallback := !r.entries[key].waker.IsZero()
	r.entries[key] = registryEntry{}
	r.used--
	if hadCallback {
		r.notifiable--
		return false
	}
	for i := range r.entries {
		if r.entries[i].active && !r.entries[i].waker.IsZero() {
			w := r.entries[i].waker
			r.entries[i].waker = Waker{}
			r.notifiable--
			w.Wake()
			return true
		}
	}
	return false
}

// NotifyOne wakes the first entry (in key order) that still holds a live
// callback, leaving its slot present with the callback cleared. It reports
// whether any entry was notified. Channels use NotifyOne so that N sends
// wake N receivers.
func (r *Registry) NotifyOne() bool {
	for i := range r.entries {
		if r.entries[i].active && !r.entries[i].waker.IsZero() {
			w := r.entries[i].waker
			r.entries[i].waker = Waker{}
			r.notifiable--
			w.Wake()
			return true
		}
	}
	return false
}

// NotifyAny wakes one entry only if no notification is already in flight
// (i.e. every present entry still has a live callback). It is idempotent
// under contention, unlike NotifyOne: calling it repeatedly while a wake is
// still pending consumption does nothing. Mutex uses NotifyAny because only
// one waiter can ever succeed at a time.
func (r *Registry) NotifyAny() bool {
	if r.notifiable != r.used {
		return false
	}
	return r.NotifyOne()
}

func (r *Registry) valid(key int) bool {
	return key >= 0 && key < len(r.entries) && r.entries[key].active
}
