// Package platform isolates the three operations coreexec needs from the
// host that a bare-metal target would otherwise supply directly: halting
// on an unrecoverable error, and the wait/wake pair an executor uses to
// sleep between rounds instead of spinning.
//
// Grounded on the teacher's per-OS wakeup_linux.go/wakeup_darwin.go/
// wakeup_windows.go split (an eventfd on Linux, other primitives
// elsewhere): this package keeps the same shape, but behind a single
// Hooks interface instead of build-tagged free functions, since coreexec
// needs to swap implementations at runtime (hosted tests vs. a future
// bare-metal build) rather than only at compile time.
package platform

// Hooks is the seam between coreexec's scheduler and whatever environment
// it runs in. A bare-metal port implements this directly against its
// vendor HAL (WFE/SEV on Cortex-M, WFI on RISC-V); this module ships only
// a hosted implementation for development and testing.
type Hooks interface {
	// Abort halts the runtime. It must not return: spec.md's fatal
	// conditions (arena exhaustion, spawn beyond capacity, a reentrant
	// BlockOn, a spawned task returning) are all unrecoverable by design,
	// the same way the teacher's internal abort path is a panic/os.Exit
	// rather than a returned error.
	Abort()

	// SignalEventReady requests that a blocked WaitForEvent return. It
	// must be safe to call from any goroutine, including ones standing in
	// for an interrupt handler — mirroring SEV being callable from an ISR
	// on Cortex-M.
	SignalEventReady()

	// WaitForEvent blocks until the next SignalEventReady call (or
	// returns immediately if one is already pending), mirroring WFE/WFI.
	// The executor calls it only when a full round produced no progress.
	WaitForEvent()
}
