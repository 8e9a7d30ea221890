// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import "errors"

// Sentinel errors for programmer-usage mistakes. Compare with errors.Is.
//
// These are the checkable, recoverable half of the error taxonomy: a caller
// can reasonably inspect one of these and retry or branch. Forced unwind and
// propagated user panics are the other half and are never returned as
// errors — both are real Go panics; a user panic crosses Resume, while the
// forced-unwind panic is recovered inside the coroutine, see execution.go.
var (
	// ErrInvalidFlow is returned when a Flow is nil at Execution creation.
	ErrInvalidFlow = errors.New("fiber: invalid flow")

	// ErrInvalidStackSize is returned when a stack allocator or region is
	// configured smaller than minStackSize.
	ErrInvalidStackSize = errors.New("fiber: invalid stack size")

	// ErrInvalidArgument is returned for other malformed constructor input,
	// such as a nil allocator.
	ErrInvalidArgument = errors.New("fiber: invalid argument")

	// ErrResumeOnCompletedCoroutine is returned by Resume once the
	// underlying flow has already run to completion or terminated.
	ErrResumeOnCompletedCoroutine = errors.New("fiber: resume on completed coroutine")

	// ErrSuspendOnNotStartedCoroutine is returned by Suspend when called
	// before the coroutine it belongs to has ever been resumed.
	ErrSuspendOnNotStartedCoroutine = errors.New("fiber: suspend on not started coroutine")

	// ErrAlreadyClosed is returned by Close on a second call.
	ErrAlreadyClosed = errors.New("fiber: execution already closed")
)
