// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Routine is a unit of work a Coroutine runs. Unlike a Flow, a Routine is
// not handed a Suspendable directly — the Coroutine stashes its own
// suspender the first time it runs, so routine code calls Suspend on the
// *Coroutine* that owns it rather than threading a parameter through every
// call in its own stack. This is the ergonomic, slightly-less-explicit
// sibling of NaiveCoroutine below.
type Routine interface {
	RunRoutine()
}

type routineFunc func()

func (f routineFunc) RunRoutine() { f() }

// NewRoutine adapts a plain function into a Routine.
func NewRoutine(f func()) Routine {
	return routineFunc(f)
}

// Coroutine is a reusable, symmetric suspend/resume handle around one
// Routine. Create it with NewCoroutine, drive it with Resume, and have the
// routine itself call Suspend on the Coroutine to give up control.
type Coroutine struct {
	noCopy noCopy

	exec      *Execution
	routine   Routine
	suspender Suspendable
}

// coroutineFlow adapts a Coroutine into the Flow its Execution drives.
type coroutineFlow struct{ c *Coroutine }

func (cf coroutineFlow) Run(s Suspendable) {
	cf.c.suspender = s
	cf.c.routine.RunRoutine()
}

// NewCoroutine allocates a region from alloc and builds a Coroutine that
// will run routine the first time it is resumed. A nil alloc gets a fresh
// allocator sized to DefaultStackSize.
func NewCoroutine(alloc *StackAllocator, routine Routine) (*Coroutine, error) {
	if routine == nil {
		return nil, ErrInvalidArgument
	}
	if alloc == nil {
		var err error
		alloc, err = NewStackAllocator(DefaultStackSize)
		if err != nil {
			return nil, err
		}
	}
	c := &Coroutine{routine: routine}
	exec, err := NewExecution(coroutineFlow{c: c}, alloc)
	if err != nil {
		return nil, err
	}
	c.exec = exec
	return c, nil
}

// Resume runs the routine until it next calls Suspend or returns. See
// [Execution.Resume] for panic-propagation semantics.
func (c *Coroutine) Resume() error { return c.exec.Resume() }

// Suspend gives up control back to whoever called Resume. It must be
// called from inside the routine this Coroutine is running; calling it
// before the Coroutine has ever been resumed returns
// ErrSuspendOnNotStartedCoroutine without blocking.
func (c *Coroutine) Suspend() error {
	if c.suspender == nil {
		return ErrSuspendOnNotStartedCoroutine
	}
	return c.suspender.Suspend()
}

// IsCompleted reports whether the routine has run to completion or been
// torn down by Close.
func (c *Coroutine) IsCompleted() bool { return c.exec.IsCompleted() }

// IsStarted reports whether Resume has ever been called.
func (c *Coroutine) IsStarted() bool { return c.exec.IsStarted() }

// Close forces an unwind if the routine is still live. See
// [Execution.Close].
func (c *Coroutine) Close() error { return c.exec.Close() }
