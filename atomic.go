// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import "sync/atomic"

// AtomicBool is a lock-free boolean cell guarded by compare-and-swap.
// The zero value holds false. Every operation is linearizable with
// respect to all other operations on the same cell.
type AtomicBool struct {
	v atomic.Bool
}

// Load returns the current value.
func (b *AtomicBool) Load() bool { return b.v.Load() }

// Store sets the cell to new.
func (b *AtomicBool) Store(new bool) { b.v.Store(new) }

// CompareAndSwap installs new only if the cell still holds old,
// reporting whether the swap happened. A false return is not a
// failure; the caller retries with a fresh read.
func (b *AtomicBool) CompareAndSwap(old, new bool) bool {
	return b.v.CompareAndSwap(old, new)
}

// Swap installs new and returns the value the cell held before.
func (b *AtomicBool) Swap(new bool) bool { return b.v.Swap(new) }

// AtomicInt64 is a lock-free integer cell guarded by compare-and-swap.
// The zero value holds 0.
type AtomicInt64 struct {
	v atomic.Int64
}

// Load returns the current value.
func (n *AtomicInt64) Load() int64 { return n.v.Load() }

// Store sets the cell to new.
func (n *AtomicInt64) Store(new int64) { n.v.Store(new) }

// CompareAndSwap installs new only if the cell still holds old,
// reporting whether the swap happened.
func (n *AtomicInt64) CompareAndSwap(old, new int64) bool {
	return n.v.CompareAndSwap(old, new)
}

// Swap installs new and returns the value the cell held before.
func (n *AtomicInt64) Swap(new int64) int64 { return n.v.Swap(new) }

// FetchAdd adds delta to the cell as a single hardware fetch-add and
// returns the value the cell held before.
func (n *AtomicInt64) FetchAdd(delta int64) int64 {
	return n.v.Add(delta) - delta
}

// Update applies fn in a compare-and-swap retry loop until fn(old) is
// installed over an unchanged old, returning that old value. fn may
// run more than once under contention and must be free of side
// effects. Increment-with-clamp and similar read/compute/swap
// operations go through here instead of hand-rolling the loop.
func (n *AtomicInt64) Update(fn func(old int64) int64) int64 {
	for {
		old := n.v.Load()
		if n.v.CompareAndSwap(old, fn(old)) {
			return old
		}
	}
}

// AtomicRef is a lock-free reference cell holding a pointer to T.
// Compare-and-swap compares pointer identity, never value equality.
// The garbage collector keeps the referent alive for as long as any
// cell or caller still holds the pointer, so no manual retain cycle is
// needed around publication. The zero value holds nil.
type AtomicRef[T any] struct {
	p atomic.Pointer[T]
}

// Load returns the current reference.
func (r *AtomicRef[T]) Load() *T { return r.p.Load() }

// Store sets the cell to new.
func (r *AtomicRef[T]) Store(new *T) { r.p.Store(new) }

// CompareAndSwap installs new only if the cell still holds the
// identical pointer old, reporting whether the swap happened.
func (r *AtomicRef[T]) CompareAndSwap(old, new *T) bool {
	return r.p.CompareAndSwap(old, new)
}

// Swap installs new and returns the reference the cell held before.
func (r *AtomicRef[T]) Swap(new *T) *T { return r.p.Swap(new) }

// Update applies fn in a compare-and-swap retry loop until fn(old) is
// installed over an unchanged old, returning that old reference.
func (r *AtomicRef[T]) Update(fn func(old *T) *T) *T {
	for {
		old := r.p.Load()
		if r.p.CompareAndSwap(old, fn(old)) {
			return old
		}
	}
}
