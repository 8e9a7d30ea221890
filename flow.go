// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Flow is the body an Execution runs on its own stack. Run is called at
// most once, on the coroutine's own goroutine, and receives the
// Suspendable it must call to give up control. It is not called at all when
// the Execution is closed before its first Resume.
//
// Run is not required to return: it may loop forever, so long as it calls
// Suspend often enough for the owner to make progress resuming it, and so
// long as it honors a forced unwind (a panic that must not be recovered)
// by letting it propagate.
type Flow interface {
	Run(s Suspendable)
}

// flowFunc adapts a plain function into a Flow.
type flowFunc func(Suspendable)

func (f flowFunc) Run(s Suspendable) { f(s) }

// BasicFlow wraps f as a Flow. This is the borrowed-flow constructor: the
// caller keeps whatever reference it already has to f's captured state.
// Go's garbage collector makes the owned/borrowed distinction the original
// draws between "execution owns the flow object" and "execution only
// borrows a pointer to it" a matter of bookkeeping rather than safety —
// NewExecution is the only construction path, and it holds the Flow value
// it is given. There is no separate raw-flow constructor.
func BasicFlow(f func(Suspendable)) Flow {
	return flowFunc(f)
}
