package coreexec

// Sentinel errors for the "locally recoverable" cases: a full channel, an
// empty channel, and an already-held mutex. Structural violations
// (reentrant BlockOn, spawning past capacity, arena exhaustion, a spawned
// task returning) are not represented as errors at all — they go through
// platform.Hooks.Abort instead.

import "errors"

var (
	// ErrChannelFull is returned by Channel.TrySend when the ring buffer
	// has no free slot.
	ErrChannelFull = errors.New("coreexec: channel full")

	// ErrChannelEmpty is returned by Channel.TryRecv when no value is
	// available.
	ErrChannelEmpty = errors.New("coreexec: channel empty")

	// ErrLockHeld is returned by Mutex.TryLock when the lock is already
	// held.
	ErrLockHeld = errors.New("coreexec: lock held")
)

// FatalError names a structural invariant violation as an error value. The
// runtime itself does not construct or pass one: platform.Hooks.Abort
// takes no arguments, and the executor reports the cause only through its
// Logger before calling Abort.
type FatalError struct {
	// Reason is a short, stable identifier such as "reentrant-block-on" or
	// "spawn-capacity-exceeded".
	Reason string
}

func (e *FatalError) Error() string {
	return "coreexec: fatal: " + e.Reason
}

func fatal(reason string) error {
	return &FatalError{Reason: reason}
}
