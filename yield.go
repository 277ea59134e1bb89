package coreexec

// Yield suspends t for exactly one round, giving every other ready task a
// turn before t resumes, per spec.md Section 4.7. Unlike Channel and
// Mutex, Yield needs no Registry: it simply re-arms its own waker before
// parking, so the executor observes it ready again on the very next
// round.
func Yield(t *Task) {
	t.ctl.ready.Store(true)
	t.ctl.suspend()
}
