// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"sync/atomic"
	"unsafe"
)

// minStackSize is the smallest region the execution engine will install a
// frame on. It is enforced at Execution construction, not at allocator
// construction: an allocator configured below this size is legal to build
// and to allocate from, it is simply unusable for running a Flow.
const minStackSize = 128000

// guardSize records the original engine's 64-byte safety margin below its
// (top - sizeof(frame)) placement. No frame is placed in a region here, and
// nothing in this package subtracts guardSize from a region.
const guardSize = 64

// DefaultStackSize is used by Coroutine and NaiveCoroutine when no
// allocator is supplied.
const DefaultStackSize = 1 << 20 // 1 MiB

// StackRegion describes one allocation handed out by a StackAllocator.
//
// Size and top are the original stack type's two fields — base is derived,
// never stored, so there is nothing to keep in sync. buf is this region's
// own backing array; it exists only to keep that array reachable (and its
// address stable and unreused) for as long as the region is outstanding,
// and is dropped on Deallocate.
type StackRegion struct {
	size int
	top  uintptr
	buf  []byte
}

// Size reports the region's total size in bytes.
func (s StackRegion) Size() int { return s.size }

// Top reports the address one past the highest byte of the region.
func (s StackRegion) Top() uintptr { return s.top }

// Base reports the address of the lowest byte of the region.
func (s StackRegion) Base() uintptr { return s.top - uintptr(s.size) }

// Empty reports whether the region has already been released.
func (s StackRegion) Empty() bool { return s.size == 0 }

// released returns the zero-value region, matching the original's release().
func released() StackRegion { return StackRegion{} }

// StackAllocator hands out fixed-size StackRegions, each backed by its own
// fresh allocation, and tracks how many are currently outstanding so tests
// can assert every region handed out comes back.
//
// A zero StackAllocator is not usable; construct one with NewStackAllocator.
type StackAllocator struct {
	size        int
	outstanding atomic.Int64
}

// NewStackAllocator builds an allocator that hands out regions of size
// bytes. Only a zero or negative size is rejected here, with
// ErrInvalidArgument — an allocator configured smaller than the engine's
// minimum stack size is accepted; Execution construction is what enforces
// that minimum, once it knows the region is meant to carry a frame.
func NewStackAllocator(size int) (*StackAllocator, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument
	}
	return &StackAllocator{size: size}, nil
}

// Allocate reserves one region backed by a fresh, independently-addressed
// byte slice — every call gets its own backing array, exactly as the
// original engine's heap allocator hands out a new block per call rather
// than reusing one. The slice is held by the returned StackRegion so the
// address stays valid and unreused by the Go runtime for as long as the
// region is outstanding; no frame is ever placed inside it, since the frame
// that runs user code lives on the coroutine's own goroutine stack, which
// the Go runtime grows and moves on its own.
func (a *StackAllocator) Allocate() (StackRegion, error) {
	if a == nil {
		return StackRegion{}, ErrInvalidArgument
	}
	buf := make([]byte, a.size)
	a.outstanding.Add(1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return StackRegion{size: a.size, top: base + uintptr(a.size), buf: buf}, nil
}

// Deallocate returns a region to the allocator. r must be non-empty and its
// size must equal this allocator's size — the only two runtime checks the
// engine relies on here — or Deallocate panics: both are programmer errors,
// matching the original's assertion that the region handed to deallocate is
// still live and came from an allocator of the same size. A region from a
// different allocator of the same size is accepted.
func (a *StackAllocator) Deallocate(r *StackRegion) {
	if r.Empty() {
		panic("fiber: deallocate of an already-released stack region")
	}
	if r.Size() != a.size {
		panic("fiber: deallocate of a region not produced by this allocator")
	}
	a.outstanding.Add(-1)
	*r = released()
}

// Stats reports the number of regions currently allocated and not yet
// returned. Used by tests to verify the one-allocate-one-deallocate pairing
// invariant without reaching into allocator internals.
func (a *StackAllocator) Stats() (outstanding int64) {
	return a.outstanding.Load()
}
