// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"runtime"
	"sync/atomic"
)

// forcedUnwindSignal is the internal panic value that drives a forced
// unwind. It must never reach user code: entry's own recover strips it out
// before anything is reported back to the resumer.
type forcedUnwindSignal struct{}

// Execution owns one Flow running on its own goroutine and the StackRegion
// accounted against it. It is the engine both Coroutine and NaiveCoroutine
// are built from; most callers want one of those rather than Execution
// directly.
//
// An Execution must not be copied or used from more than one goroutine at
// a time — Resume, Suspend (via the Suspendable it hands the Flow), and
// Close all assume strict alternation between exactly one caller and the
// coroutine's own goroutine, exactly as the original machine-context
// contract requires.
type Execution struct {
	noCopy noCopy

	flow   Flow
	alloc  *StackAllocator
	region StackRegion
	coro   machineContext

	// replyTo is only ever touched from the coroutine's own goroutine;
	// started is written by Resume before it jumps and read after the jump.
	replyTo machineContext
	started atomic.Bool

	completed atomic.Bool
	closed    atomic.Bool
}

// NewExecution allocates a region from alloc and constructs an Execution
// that will run flow on it. flow does not start running until the first
// Resume call — construction only spawns the goroutine and blocks it on
// its own inbox, mirroring the original engine's two-step install
// (make_context, then a throwaway jump_to_context that the frame
// trampoline immediately jumps back out of).
func NewExecution(flow Flow, alloc *StackAllocator) (*Execution, error) {
	if flow == nil {
		return nil, ErrInvalidFlow
	}
	if alloc == nil {
		return nil, ErrInvalidArgument
	}
	region, err := alloc.Allocate()
	if err != nil {
		return nil, err
	}
	if region.Size() < minStackSize {
		alloc.Deallocate(&region)
		return nil, ErrInvalidStackSize
	}
	e := &Execution{flow: flow, alloc: alloc, region: region}
	e.coro = makeContext(e.entry)
	runtime.AddCleanup(e, finalizeCoroutine, e.coro)
	return e, nil
}

// entry runs on the coroutine's own goroutine. It never runs more than
// once. For an Execution that is closed before its first Resume, entry only
// releases the region and replies; the Flow never runs.
func (e *Execution) entry(first transfer) {
	e.replyTo = first.from
	if first.unwind {
		e.completed.Store(true)
		e.alloc.Deallocate(&e.region)
		e.replyTo <- transfer{done: true}
		return
	}
	defer e.finish()
	e.flow.Run(&suspendableHandle{e: e})
}

// finish runs as the coroutine goroutine's last act, whether the Flow
// returned normally or a forced unwind panic reached here. It recovers any
// panic, tells the allocator the region is free, and reports back to
// whichever goroutine is currently waiting on replyTo.
func (e *Execution) finish() {
	var userPanic any
	if r := recover(); r != nil {
		if _, ok := r.(forcedUnwindSignal); !ok {
			userPanic = r
		}
	}
	e.completed.Store(true)
	e.alloc.Deallocate(&e.region)
	e.replyTo <- transfer{done: true, recover: userPanic}
}

// suspend runs on the coroutine's own goroutine, called from inside Flow.Run
// via the Suspendable it was given. It jumps back to whoever is currently
// resuming this Execution and blocks until the next Resume or Close wakes
// it back up.
func (e *Execution) suspend() error {
	if !e.started.Load() {
		return ErrSuspendOnNotStartedCoroutine
	}
	in := jumpToContext(e.replyTo, e.coro, transfer{done: false})
	e.replyTo = in.from
	if in.unwind {
		panic(forcedUnwindSignal{})
	}
	return nil
}

// Resume transfers control to the Flow, running it until it next calls
// Suspend or returns. If the Flow panicked — including by letting a nested
// coroutine's own user panic propagate unhandled — Resume re-panics with
// the same value, so the exception surfaces at the matching Resume call
// exactly as the original's in-band forced_unwind/exception model requires.
func (e *Execution) Resume() error {
	if e.completed.Load() {
		return ErrResumeOnCompletedCoroutine
	}
	e.started.Store(true)
	self := make(machineContext)
	resp := jumpToContext(e.coro, self, transfer{done: false})
	if resp.done {
		e.completed.Store(true)
		if resp.recover != nil {
			panic(resp.recover)
		}
	}
	return nil
}

// IsCompleted reports whether the Flow has run to completion, terminated
// with a panic already re-raised through Resume, or been torn down by
// Close. Once true it never becomes false again.
func (e *Execution) IsCompleted() bool {
	return e.completed.Load()
}

// IsStarted reports whether Resume has ever been called.
func (e *Execution) IsStarted() bool {
	return e.started.Load()
}

// Close forces an unwind if the Flow is still live, running every deferred
// cleanup on the coroutine's own stack before returning, then releases the
// stack region. Close is idempotent's opposite: a second call returns
// ErrAlreadyClosed rather than silently succeeding, since a caller that
// closes twice almost certainly has a logic error worth surfacing.
//
// If a deferred cleanup running during the forced unwind panics for real —
// rather than letting the internal unwind signal pass through — that panic
// re-surfaces from Close exactly as a Resume-time panic re-surfaces from
// Resume: a panic during forced unwind has nowhere else to go, so it
// crashes the program the same way an uncaught panic always does.
//
// Close is the only path that tears down a live Execution. The cleanup
// registered at construction does not run while the coroutine's goroutine
// is alive, because that goroutine references the Execution; an Execution
// dropped without Close keeps its goroutine and its stack region.
func (e *Execution) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrAlreadyClosed
	}
	if e.completed.Load() {
		return nil
	}
	self := make(machineContext)
	resp := jumpToContext(e.coro, self, transfer{unwind: true})
	e.completed.Store(true)
	if resp.recover != nil {
		panic(resp.recover)
	}
	return nil
}

// finalizeCoroutine is the defensive backstop runtime.AddCleanup registers
// for every Execution. It makes a non-blocking attempt to send an unwind
// request to the coroutine. The runtime runs it only once the Execution is
// unreachable, which is not the case while the coroutine's goroutine is
// alive, so by then no one receives on coro and the send falls through to
// the default case.
func finalizeCoroutine(coro machineContext) {
	go func() {
		self := make(machineContext)
		select {
		case coro <- transfer{from: self, unwind: true}:
			<-self
		default:
		}
	}()
}
