package platform

import (
	"os"
	"sync"
)

// condHooks is the portable fallback Hooks implementation, used on Linux
// only if eventfd creation fails, and on every other platform. It
// reproduces WFE/SEV's wait/wake-with-latch semantics (a pending
// SignalEventReady call is never lost even if it arrives before the
// matching WaitForEvent) using a sync.Cond-guarded latch, the same
// "condition variable standing in for a hardware event" technique the
// teacher's non-eventfd wakeup files fall back to.
type condHooks struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending bool
}

func newCondHooks() *condHooks {
	h := &condHooks{}
	h.cond = sync.NewCond(&h.mu)
	return h
}

func (h *condHooks) Abort() {
	os.Exit(1)
}

func (h *condHooks) SignalEventReady() {
	h.mu.Lock()
	h.pending = true
	h.mu.Unlock()
	h.cond.Signal()
}

func (h *condHooks) WaitForEvent() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for !h.pending {
		h.cond.Wait()
	}
	h.pending = false
}
