package coreexec

import (
	"sync/atomic"

	"github.com/joeycumines/go-coreexec/platform"
)

// control is the arena-allocated task record spec.md Section 3 describes:
// an atomic ready flag plus the "interior-mutable, type-erased polled
// computation". In the original Rust-shaped model the computation is a
// Future polled in place; here it is a goroutine, and control is the
// rendezvous the executor uses to grant it exactly one turn at a time
// (see poll below). This is the Go-idiomatic stand-in for spec.md's
// poll/pin machinery, recorded as an Open Question resolution in
// SPEC_FULL.md and DESIGN.md.
type control struct {
	ready    atomic.Bool
	resume   chan struct{}
	parked   chan struct{}
	finished chan struct{}
}

func newControl() control {
	return control{
		resume:   make(chan struct{}),
		parked:   make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// poll grants the task one turn: it clears the ready flag is the caller's
// job (CompareAndSwap, done by the executor loop so the ordering matches
// spec.md Section 4.3 exactly), then unblocks the goroutine and waits for
// it to either park (suspend, still Pending) or finish. It returns true if
// the task parked.
func (c *control) poll() (parked bool) {
	c.resume <- struct{}{}
	select {
	case <-c.parked:
		return true
	case <-c.finished:
		return false
	}
}

// suspend hands control back to the executor and blocks until the executor
// grants another turn. Every suspension point in this package (Yield,
// Channel.Recv/Send, Mutex.Lock) bottoms out here — the caller is expected
// to have already registered a Waker somewhere so its ready flag gets set
// again.
func (c *control) suspend() {
	c.parked <- struct{}{}
	<-c.resume
}

// Task is the handle a computation receives to interact with the
// scheduler: it is how Yield, Channel, and Mutex identify which
// goroutine's turn they are suspending.
type Task struct {
	ctl *control
	ex  *Executor
}

// waker returns a Waker targeting this task's ready flag.
func (t *Task) waker() Waker {
	return Waker{ready: &t.ctl.ready}
}

// Spawn registers f as a background task on t's executor. It is
// equivalent to calling Spawn on the Executor directly and exists so
// drivers and combinators that only hold a *Task can still fan out work.
func (t *Task) Spawn(f func(*Task)) {
	t.ex.Spawn(f)
}

// Executor is the singleton-per-instance scheduler: it owns the task
// table and drives BlockOn's round-robin poll loop. Unlike spec.md's
// process-wide singleton (appropriate for a single address space with one
// firmware image), this port makes Executor an explicit value so hosted
// tests can run more than one runtime in the same process; a real
// firmware binary simply constructs exactly one at startup.
type Executor struct {
	arena     *Arena[control]
	tasks     []*control
	capacity  int
	hooks     platform.Hooks
	logger    Logger
	inBlockOn atomic.Bool
}

// NewExecutor constructs an Executor. Construction itself never fails:
// invalid configuration (e.g. a zero task capacity) is clamped to the
// documented defaults the same way the teacher's resolveLoopOptions fills
// in FastPathAuto.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := resolveExecutorOptions(opts)
	if cfg.taskCapacity < 1 {
		cfg.taskCapacity = defaultTaskCapacity
	}
	if cfg.arenaBudget < 1 {
		cfg.arenaBudget = defaultArenaBudget
	}
	ex := &Executor{
		capacity: cfg.taskCapacity,
		hooks:    cfg.hooks,
		logger:   cfg.logger,
	}
	ex.arena = NewArena[control](cfg.arenaBudget, func() {
		ex.logger.Log(LogEntry{Level: LevelError, Category: "executor", Message: "arena exhausted"})
		ex.hooks.Abort()
	})
	ex.tasks = make([]*control, 0, cfg.taskCapacity)
	return ex
}

// Spawn registers a never-terminating computation with the executor. f
// receives a *Task it must use for every suspension point it performs
// (Yield, Channel, Mutex). If f ever returns, the executor aborts on its
// next poll of that task (spec.md Section 7).
//
// Spawn must only be called from foreground context: either before the
// matching BlockOn starts, or from within a task body during its own
// turn. It is not safe to call from a goroutine standing in for an
// interrupt handler.
func (ex *Executor) Spawn(f func(*Task)) {
	if len(ex.tasks) >= ex.capacity {
		ex.logger.Log(LogEntry{Level: LevelError, Category: "executor", Message: "spawn beyond capacity"})
		ex.hooks.Abort()
		return
	}
	c := ex.arena.AllocInit(newControl())
	c.ready.Store(true) // a freshly spawned task is polled once immediately, like the main flag.
	ex.tasks = append(ex.tasks, c)

	t := &Task{ctl: c, ex: ex}
	go func() {
		<-c.resume
		f(t)
		close(c.finished)
	}()
}

// BlockOn polls f to completion while driving every spawned task
// concurrently, per spec.md Section 4.3. It returns the value f produces.
// Calling BlockOn while already inside a BlockOn call is fatal (spec.md
// Section 7).
func BlockOn[T any](ex *Executor, f func(*Task) T) T {
	if !ex.inBlockOn.CompareAndSwap(false, true) {
		ex.logger.Log(LogEntry{Level: LevelError, Category: "executor", Message: "reentrant BlockOn"})
		ex.hooks.Abort()
		var zero T
		return zero
	}
	defer ex.inBlockOn.Store(false)

	main := newControl()
	main.ready.Store(true) // polled once immediately, per spec.md Section 3.

	var result T
	go func() {
		<-main.resume
		result = f(&Task{ctl: &main, ex: ex})
		close(main.finished)
	}()

	for {
		woken := false

		if main.ready.CompareAndSwap(true, false) {
			woken = true
			if !main.poll() {
				return result
			}
		}

		n := len(ex.tasks)
		for i := 0; i < n; i++ {
			c := ex.tasks[i]
			if c.ready.CompareAndSwap(true, false) {
				woken = true
				if !c.poll() {
					ex.logger.Log(LogEntry{Level: LevelError, Category: "executor", TaskID: int64(i), Message: "spawned task returned"})
					ex.hooks.Abort()
					return result
				}
			}
		}

		if woken {
			continue
		}

		ex.hooks.WaitForEvent()
	}
}
