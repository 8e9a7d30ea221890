// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// NaiveRoutine is a unit of work that receives its Suspendable directly,
// the way Flow does. It is the thinner of the two routine shapes: there is
// no Coroutine-level Suspend to call, only the handle passed into
// RunRoutine — "naive" in the sense the original gives the term, not in
// any pejorative one.
type NaiveRoutine interface {
	RunRoutine(s Suspendable)
}

type naiveRoutineFunc func(Suspendable)

func (f naiveRoutineFunc) RunRoutine(s Suspendable) { f(s) }

// NewNaiveRoutine adapts a plain function into a NaiveRoutine.
func NewNaiveRoutine(f func(Suspendable)) NaiveRoutine {
	return naiveRoutineFunc(f)
}

type naiveFlow struct{ routine NaiveRoutine }

func (nf naiveFlow) Run(s Suspendable) { nf.routine.RunRoutine(s) }

// NaiveCoroutine is Execution plus NaiveRoutine with nothing else added: a
// reusable suspend/resume handle whose routine takes its Suspendable as an
// explicit parameter rather than stashing it, unlike Coroutine.
type NaiveCoroutine struct {
	noCopy noCopy

	exec *Execution
}

// NewNaiveCoroutine allocates a region from alloc and builds a
// NaiveCoroutine that will run routine the first time it is resumed. A nil
// alloc gets a fresh allocator sized to DefaultStackSize.
func NewNaiveCoroutine(alloc *StackAllocator, routine NaiveRoutine) (*NaiveCoroutine, error) {
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
	exec, err := NewExecution(naiveFlow{routine: routine}, alloc)
	if err != nil {
		return nil, err
	}
	return &NaiveCoroutine{exec: exec}, nil
}

// Resume runs the routine until it next calls Suspend on its Suspendable or
// returns. See [Execution.Resume] for panic-propagation semantics.
func (c *NaiveCoroutine) Resume() error { return c.exec.Resume() }

// IsCompleted reports whether the routine has run to completion or been
// torn down by Close.
func (c *NaiveCoroutine) IsCompleted() bool { return c.exec.IsCompleted() }

// IsStarted reports whether Resume has ever been called.
func (c *NaiveCoroutine) IsStarted() bool { return c.exec.IsStarted() }

// Close forces an unwind if the routine is still live. See
// [Execution.Close].
func (c *NaiveCoroutine) Close() error { return c.exec.Close() }
