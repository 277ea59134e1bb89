package coreexec

import "github.com/joeycumines/go-coreexec/platform"

// Channel is a bounded, single-producer-or-multi-producer FIFO queue
// between tasks on the same executor, per spec.md Section 4.5. Modeled
// after the wraparound-index technique in the teacher family's ring
// buffers (see go-catrate's ringBuffer), but written directly against
// []T here instead of imported: catrate's ringBuffer is unexported and
// constrained to cmp.Ordered element types, so it cannot back an
// arbitrary-payload channel without a fork (see DESIGN.md).
//
// Channel is foreground-only: TrySend/TryRecv must not be called from
// interrupt context. A driver ISR should instead call a Waker directly
// and let the woken task perform the channel operation on its own turn.
type Channel[T any] struct {
	buf       []T
	write     int
	read      int
	senders   *Registry
	receivers *Registry
	hooks     platform.Hooks
}

// NewChannel creates a Channel with the given fixed capacity. waiterCap
// bounds how many tasks may simultaneously block in Send or Recv before
// the relevant registry aborts; it defaults to capacity if zero.
func NewChannel[T any](capacity int, hooks platform.Hooks, waiterCap int) *Channel[T] {
	if waiterCap <= 0 {
		waiterCap = capacity
	}
	abort := hooks.Abort
	return &Channel[T]{
		buf:       make([]T, capacity),
		senders:   NewRegistry(waiterCap, abort),
		receivers: NewRegistry(waiterCap, abort),
		hooks:     hooks,
	}
}

// TrySend attempts a non-blocking send, returning ErrChannelFull if there
// is no free slot. v is left with the caller on failure, unlike the
// original move-the-value-back contract: idiomatic Go returns an error
// instead of an owned value on the failure path.
func (c *Channel[T]) TrySend(v T) error {
	if c.write-c.read >= len(c.buf) {
		return ErrChannelFull
	}
	c.buf[c.write%len(c.buf)] = v
	c.write++
	c.receivers.NotifyOne()
	c.hooks.SignalEventReady()
	return nil
}

// TryRecv attempts a non-blocking receive, returning ErrChannelEmpty if
// no value is available.
func (c *Channel[T]) TryRecv() (T, error) {
	if c.write <= c.read {
		var zero T
		return zero, ErrChannelEmpty
	}
	v := c.buf[c.read%len(c.buf)]
	var zero T
	c.buf[c.read%len(c.buf)] = zero // drop the reference promptly for GC, matching "moved out" semantics
	c.read++
	c.senders.NotifyOne()
	c.hooks.SignalEventReady()
	return v, nil
}

// Send enqueues v, suspending t until there is room.
func (c *Channel[T]) Send(t *Task, v T) {
	for {
		if c.TrySend(v) == nil {
			return
		}
		key := c.senders.Insert(t.waker())
		t.ctl.suspend()
		c.senders.Remove(key)
	}
}

// Recv dequeues a value, suspending t until one is available.
func (c *Channel[T]) Recv(t *Task) T {
	for {
		if v, err := c.TryRecv(); err == nil {
			return v
		}
		key := c.receivers.Insert(t.waker())
		t.ctl.suspend()
		c.receivers.Remove(key)
	}
}
