package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCondHooks_WaitReturnsImmediatelyIfAlreadySignaled(t *testing.T) {
	h := newCondHooks()
	h.SignalEventReady()

	done := make(chan struct{})
	go func() {
		h.WaitForEvent()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForEvent did not return for an already-pending signal")
	}
}

func TestCondHooks_WaitBlocksUntilSignaled(t *testing.T) {
	h := newCondHooks()

	done := make(chan struct{})
	go func() {
		h.WaitForEvent()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitForEvent returned before any signal")
	case <-time.After(50 * time.Millisecond):
	}

	h.SignalEventReady()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForEvent did not return after signal")
	}
}

func TestHosted_ReturnsNonNilHooks(t *testing.T) {
	h := Hosted()
	assert.NotNil(t, h)
}
