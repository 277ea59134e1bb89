// Package coreexec provides a single-threaded, cooperative task runtime
// intended for memory-constrained, single-core targets: the executor,
// the bump arena backing spawned tasks, the waker registry, and the two
// intra-task synchronization primitives (a bounded channel and a mutex)
// built on top of it.
//
// # Architecture
//
// [Executor] is the scheduler core: [BlockOn] drives a foreground
// computation to completion while polling every task registered via
// [Executor.Spawn] in strict round-robin order, sleeping through the
// platform's [platform.Hooks] whenever a full round makes no progress.
// Tasks never terminate; a task goroutine that returns is a fatal
// programming error, matching the target's immortal-task model.
// BlockOn is a free function, not a method, because its result type is
// generic and Go methods cannot carry their own type parameters.
//
// A task is not a hand-written state machine: it is a goroutine that the
// executor grants one "turn" at a time via an internal handshake (see
// [control] in executor.go). From the task's point of view, suspending is
// just a function call ([Channel.Recv], [Mutex.Lock], [Yield]) that blocks
// until the executor schedules it again — no pinning, no manual
// poll-methods are exposed to callers.
//
// # Memory Model
//
// [Arena] is a monotonic bump allocator over a fixed byte budget; task
// records allocated from it live for the process's lifetime, matching the
// "spawned tasks are immortal" contract. Only a [Registry] (the waker
// slab), [Channel], and [Mutex] manage suspension; all three are
// foreground-only and therefore unsynchronized except for the one field
// that crosses into concurrent ("interrupt") context: each task's ready
// flag, an atomic.Bool.
//
// # Platform Hooks
//
// Three small hooks close the gap between this runtime and real hardware:
// Abort, SignalEventReady, and WaitForEvent (see package platform). This
// module ships a hosted implementation of those hooks for development and
// testing; production firmware supplies its own (WFE/SEV on Cortex-M, WFI
// on RISC-V).
//
// # Usage
//
//	ex := coreexec.NewExecutor(coreexec.WithTaskCapacity(8))
//
//	ex.Spawn(func(t *coreexec.Task) {
//	    for {
//	        fmt.Println("background tick")
//	        coreexec.Yield(t)
//	    }
//	})
//
//	result := coreexec.BlockOn(ex, func(t *coreexec.Task) int {
//	    fmt.Println("foreground")
//	    return 42
//	})
package coreexec
