package platform

import "sync"

// DriverHook simulates an interrupt-driven peripheral for tests: whichever
// goroutine calls Fire stands in for the ISR the way original_source's
// nrf52 serial/timer drivers install a waker from interrupt context and
// invoke it once their condition (byte received, timer expired) becomes
// true. Test code calls Fire to simulate the interrupt firing; whatever
// callback was last armed via Arm runs synchronously on the calling
// goroutine, then SignalEventReady is invoked on hooks so a blocked
// executor wakes up to observe the resulting ready flag.
//
// DriverHook is a test helper, not production driver code: a real port
// invokes its callback directly from a hardware ISR instead of from Fire.
type DriverHook struct {
	hooks Hooks

	mu  sync.Mutex
	cb  func()
}

// NewDriverHook creates a DriverHook that signals hooks whenever Fire
// runs an armed callback.
func NewDriverHook(hooks Hooks) *DriverHook {
	return &DriverHook{hooks: hooks}
}

// Arm installs cb as the callback Fire will invoke next. Arming is
// idempotent per interrupt cycle: a driver re-arms after every Fire if it
// still has outstanding work, mirroring the nrf52 timer/serial pattern of
// re-installing the waker each time poll observes "not ready yet".
func (d *DriverHook) Arm(cb func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb = cb
}

// Disarm clears any pending callback without firing it, mirroring
// NVIC::mask in the reference driver once a condition is already true and
// no further notification is needed.
func (d *DriverHook) Disarm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb = nil
}

// Fire simulates the interrupt: it runs the currently armed callback (if
// any) and then wakes anything blocked in hooks.WaitForEvent. Safe to call
// from a goroutine standing in for interrupt context, matching Waker.Wake.
func (d *DriverHook) Fire() {
	d.mu.Lock()
	cb := d.cb
	d.cb = nil
	d.mu.Unlock()

	if cb != nil {
		cb()
	}
	d.hooks.SignalEventReady()
}
