// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fiber provides a stackful, symmetric coroutine primitive: code
// can suspend on an independent call stack and resume later exactly where
// it left off, with locally-allocated state, deferred cleanup, and
// in-flight panics carried through intact.
//
// # Layers
//
// The engine is [Execution]: it allocates a [StackRegion] from a
// [StackAllocator], runs a [Flow] on its own goroutine, and alternates
// control with whoever calls [Execution.Resume] through a [Suspendable]
// the Flow calls [Suspendable.Suspend] on. [Execution.Close] is what
// reclaims a live Execution: dropping one without Close does not, since its
// goroutine keeps it reachable and the cleanup registered at construction
// runs only after that goroutine has exited.
//
// Two thin layers sit on top of Execution for user code that does not want
// to hand-roll a Flow:
//
//   - [Coroutine] wraps a [Routine] (a nullary "run this") and stashes its
//     own [Suspendable] so routine code calls Suspend on the Coroutine
//     itself, from anywhere in its call graph.
//   - [NaiveCoroutine] wraps a [NaiveRoutine], whose single method receives
//     the Suspendable directly — no stashing, one fewer indirection.
//
// # Suspend and Resume carry no payload
//
// Suspend and Resume are control transfers only. A suspended routine that
// needs to hand data to its resumer (or receive data back) does so through
// ordinary closure state — there is no generic value channel layered over
// the control transfer.
//
// # Errors
//
// Two different failure shapes cross this API. Misuse that a caller can
// reasonably check for — resuming a completed coroutine, suspending one
// that was never started, invalid construction arguments — is a sentinel
// error compared with errors.Is. A user panic raised inside a Flow is the
// other shape: it is not converted to an error at all. It crosses exactly
// one [Execution.Resume] call as a real Go panic and must be recovered by
// the caller the same way any other panic would be.
//
// # Concurrency
//
// An Execution (and anything built on one) is not safe for concurrent use.
// It may be resumed from different goroutines over its lifetime — see the
// cross-thread resume test — but never from two goroutines at once:
// exactly one side is ever running.
package fiber
