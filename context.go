// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// machineContext and its three operations (makeContext, jumpToContext, and
// the unwind flag folded into transfer below) are the package-private
// collaborator the execution engine builds on. Nothing above this file
// knows or cares that the "stack switch" is a goroutine plus a channel
// rendezvous rather than an assembly trampoline — the contract is the same
// one any correct machine-context implementation must honor: control
// passes to exactly one side at a time, and the side that is not running is
// blocked, not spinning.

// transfer is what crosses a context switch in either direction.
//
// from lets the receiver jump back to whichever context sent this transfer
// — the Go analogue of the transfer_t the original machine-context layer
// passes between make_context/jump_to_context calls.
type transfer struct {
	from    machineContext
	unwind  bool // forced-unwind request, checked at the next suspend point
	done    bool // the sender has finished running and will not jump again
	recover any  // non-nil: a user panic to re-raise in the resumer
}

// machineContext is one side of a context switch: a channel only that side
// ever receives on. Sending into a machineContext is "jumping to" it.
type machineContext chan transfer

// makeContext spawns the goroutine that will run entry and returns a handle
// to it. The goroutine blocks immediately on its own inbox — nothing in
// entry runs until the first jumpToContext targets it — which is the Go
// equivalent of the original's two-step install (make_context followed by
// one throwaway jump that the frame trampoline immediately jumps back out
// of to signal "constructed but not started").
func makeContext(entry func(first transfer)) machineContext {
	ctx := make(machineContext)
	go func() {
		first := <-ctx
		entry(first)
	}()
	return ctx
}

// jumpToContext transfers control to target, carrying t, and blocks until
// something jumps back to self. t.from is overwritten with self so the
// receiver always knows where to reply.
func jumpToContext(target machineContext, self machineContext, t transfer) transfer {
	t.from = self
	target <- t
	return <-self
}
