// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx_test

import (
	"testing"

	"code.hybscloud.com/seqx"
	"golang.org/x/sync/errgroup"
)

func TestAtomicBool(t *testing.T) {
	var b seqx.AtomicBool
	if b.Load() {
		t.Fatal("zero value should be false")
	}
	b.Store(true)
	if !b.Load() {
		t.Fatal("Store(true) not observed")
	}
	if b.CompareAndSwap(false, true) {
		t.Fatal("CAS with wrong old value should fail")
	}
	if !b.CompareAndSwap(true, false) {
		t.Fatal("CAS with matching old value should succeed")
	}
	if b.Swap(true) {
		t.Fatal("Swap should return previous value false")
	}
	if !b.Load() {
		t.Fatal("Swap(true) not observed")
	}
}

func TestAtomicInt64FetchAdd(t *testing.T) {
	var n seqx.AtomicInt64
	if old := n.FetchAdd(5); old != 0 {
		t.Fatalf("FetchAdd returned %d, want previous value 0", old)
	}
	if old := n.FetchAdd(-2); old != 5 {
		t.Fatalf("FetchAdd returned %d, want previous value 5", old)
	}
	if got := n.Load(); got != 3 {
		t.Fatalf("Load() = %d, want 3", got)
	}
}

func TestAtomicInt64Contended(t *testing.T) {
	const workers = 8
	const perWorker = 10000

	var n seqx.AtomicInt64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range perWorker {
				n.FetchAdd(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := n.Load(); got != workers*perWorker {
		t.Fatalf("Load() = %d, want %d", got, workers*perWorker)
	}
}

func TestAtomicInt64UpdateClamp(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var n seqx.AtomicInt64
	n.Store(100)

	decrementClamped := func(old int64) int64 {
		if old > 0 {
			return old - 1
		}
		return 0
	}

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range perWorker {
				if n.Update(decrementClamped) < 0 {
					t.Error("observed negative value")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := n.Load(); got != 0 {
		t.Fatalf("Load() = %d, want 0", got)
	}
}

func TestAtomicRefIdentity(t *testing.T) {
	a, b := new(int), new(int)
	*a, *b = 42, 42 // equal values, distinct identities

	var r seqx.AtomicRef[int]
	if r.Load() != nil {
		t.Fatal("zero value should hold nil")
	}
	r.Store(a)
	if r.CompareAndSwap(b, a) {
		t.Fatal("CAS must compare identity, not value equality")
	}
	if !r.CompareAndSwap(a, b) {
		t.Fatal("CAS with identical pointer should succeed")
	}
	if got := r.Swap(nil); got != b {
		t.Fatalf("Swap returned %p, want %p", got, b)
	}
}

func TestAtomicRefUpdate(t *testing.T) {
	type node struct {
		depth int
	}
	var r seqx.AtomicRef[node]
	r.Store(&node{depth: 0})

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			for range 1000 {
				r.Update(func(old *node) *node {
					return &node{depth: old.depth + 1}
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := r.Load().depth; got != 4000 {
		t.Fatalf("depth = %d, want 4000", got)
	}
}
