package coreexec

import "sync/atomic"

// Waker is the notification token a suspended task hands to whatever it is
// waiting on (a Channel, a Mutex, or a driver ISR). Waking stores true with
// release ordering into the target task's ready flag; the executor later
// observes the flag with acquire ordering and re-polls the task.
//
// Unlike the tagged-pointer Waker spec.md Section 4.3 describes (with
// explicit Clone/Drop so a borrow-checked language can track its
// lifetime), a Go Waker is a plain value: copying it is Clone, and letting
// it go out of scope is Drop — the garbage collector keeps the target
// atomic.Bool alive for as long as any Waker (or the owning task) still
// references it.
//
// A Waker is safe to call from any goroutine, including ones standing in
// for an interrupt handler, because its only operation is a single atomic
// store.
type Waker struct {
	ready *atomic.Bool
}

// Wake stores true into the target ready flag, marking the owning task
// eligible to be polled again on the executor's next round.
func (w Waker) Wake() {
	w.ready.Store(true)
}

// IsZero reports whether w was never bound to a task (the zero Waker).
func (w Waker) IsZero() bool {
	return w.ready == nil
}
