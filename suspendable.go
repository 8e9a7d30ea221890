// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Suspendable is handed to a running Flow so it can give up control without
// knowing anything about who will resume it or when.
//
// Suspend blocks the calling goroutine until some later Resume call wakes
// it back up. It carries no payload: values that must survive a suspension
// point belong in the Flow's own closure, not in the handle.
type Suspendable interface {
	Suspend() error
}

// suspendableHandle is the concrete Suspendable an Execution hands to its
// Flow. It never outlives the Execution it was built for.
type suspendableHandle struct {
	e *Execution
}

func (s *suspendableHandle) Suspend() error {
	return s.e.suspend()
}
