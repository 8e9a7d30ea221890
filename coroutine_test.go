// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"errors"
	"runtime"
	"testing"

	"code.hybscloud.com/fiber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCoroutineSuspendBeforeStart(t *testing.T) {
	co, err := fiber.NewCoroutine(nil, fiber.NewRoutine(func() {}))
	require.NoError(t, err)
	defer co.Close()
	if err := co.Suspend(); !errors.Is(err, fiber.ErrSuspendOnNotStartedCoroutine) {
		t.Fatalf("got %v, want ErrSuspendOnNotStartedCoroutine", err)
	}
}

func TestCoroutineNilRoutine(t *testing.T) {
	_, err := fiber.NewCoroutine(nil, nil)
	if !errors.Is(err, fiber.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

// tree is the fixture from §8's tree-traversal scenario:
// Fork("B", Leaf("A"), Fork("F", Fork("D", Leaf("C"), Leaf("E")), Leaf("G"))).
type treeNode struct {
	label       string
	left, right *treeNode
}

func leaf(label string) *treeNode { return &treeNode{label: label} }

func fork(label string, left, right *treeNode) *treeNode {
	return &treeNode{label: label, left: left, right: right}
}

// TestTreeTraversal covers the "Tree traversal" scenario: an in-order walk
// wrapped in a Coroutine suspends at every visited node; the driver
// collects node labels across repeated Resume calls until completion.
func TestTreeTraversal(t *testing.T) {
	root := fork("B", leaf("A"), fork("F", fork("D", leaf("C"), leaf("E")), leaf("G")))

	var data string
	var co *fiber.Coroutine

	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		data = n.label
		require.NoError(t, co.Suspend())
		walk(n.right)
	}

	var err error
	co, err = fiber.NewCoroutine(nil, fiber.NewRoutine(func() { walk(root) }))
	require.NoError(t, err)

	var collected string
	for !co.IsCompleted() {
		require.NoError(t, co.Resume())
		if !co.IsCompleted() {
			collected += data
		}
	}
	assert.Equal(t, "ABCDEFG", collected)
}

// TestCrossThreadResume covers scenario "Cross-thread resume": a coroutine
// yields three times and three separate OS threads, joined in sequence,
// each take one turn calling Resume.
func TestCrossThreadResume(t *testing.T) {
	yields := 0
	var co *fiber.Coroutine
	co, err := fiber.NewCoroutine(nil, fiber.NewRoutine(func() {
		yields++
		require.NoError(t, co.Suspend())
		yields++
		require.NoError(t, co.Suspend())
		yields++
		// no trailing Suspend: the routine returns on the third resume.
	}))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var g errgroup.Group
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			return co.Resume()
		})
		require.NoError(t, g.Wait())
	}

	if yields != 3 {
		t.Fatalf("got %d yields, want 3", yields)
	}
	if !co.IsCompleted() {
		t.Fatal("expected coroutine to be completed after the third joined resume")
	}
}

func TestNaiveCoroutine(t *testing.T) {
	var got []string
	nc, err := fiber.NewNaiveCoroutine(nil, fiber.NewNaiveRoutine(func(s fiber.Suspendable) {
		got = append(got, "a")
		require.NoError(t, s.Suspend())
		got = append(got, "b")
	}))
	require.NoError(t, err)

	require.NoError(t, nc.Resume())
	assert.False(t, nc.IsCompleted())
	require.NoError(t, nc.Resume())
	assert.True(t, nc.IsCompleted())
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNaiveCoroutineNilRoutine(t *testing.T) {
	_, err := fiber.NewNaiveCoroutine(nil, nil)
	if !errors.Is(err, fiber.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}
