// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import (
	"container/list"
	"sync"
	"time"

	"code.hybscloud.com/iox"
)

// sema is the host counting semaphore: a permit count plus a FIFO
// queue of waiters, each parked on its own channel. Signaling past the
// permit bound is legal and accumulates. Waiters are dequeued and
// woken under the mutex, so a timed-out waiter can tell "permit
// delivered" from "still queued" with one locked check.
type sema struct {
	mu      sync.Mutex
	permits int64
	drained bool
	waiters list.List // of chan struct{}
}

// signal hands one permit to the longest-blocked waiter, or banks it.
func (s *sema) signal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w := s.waiters.Front(); w != nil {
		s.waiters.Remove(w)
		close(w.Value.(chan struct{}))
		return
	}
	s.permits++
}

// wait blocks until a permit is acquired or the deadline channel
// fires; a nil deadline means no deadline. Reports whether a permit
// was acquired. A drained sema admits every waiter immediately.
func (s *sema) wait(deadline <-chan time.Time) bool {
	s.mu.Lock()
	if s.drained {
		s.mu.Unlock()
		return true
	}
	if s.permits > 0 {
		s.permits--
		s.mu.Unlock()
		return true
	}
	ready := make(chan struct{})
	elem := s.waiters.PushBack(ready)
	s.mu.Unlock()

	select {
	case <-ready:
		return true
	case <-deadline:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ready:
		// A signal raced the deadline and already dequeued this
		// waiter; the permit is ours.
		return true
	default:
		s.waiters.Remove(elem)
		return false
	}
}

// tryWait acquires a banked permit without blocking.
func (s *sema) tryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drained {
		return true
	}
	if s.permits > 0 {
		s.permits--
		return true
	}
	return false
}

// drain wakes every queued waiter and admits all future ones.
func (s *sema) drain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drained = true
	for w := s.waiters.Front(); w != nil; w = s.waiters.Front() {
		s.waiters.Remove(w)
		close(w.Value.(chan struct{}))
	}
}

// Semaphore is a counting semaphore that drains itself on Close:
// every goroutine still blocked in Wait is woken rather than leaked.
// It tracks the number of recorded waiters in an atomic cell so
// teardown knows how many signals to deliver. A nil *Semaphore is a
// valid unbounded semaphore: Wait never blocks, Signal and Close are
// no-ops.
type Semaphore struct {
	waiting AtomicInt64
	closed  AtomicBool
	inner   sema
}

// NewSemaphore creates a semaphore holding permits. Panics if permits
// is negative.
func NewSemaphore(permits int64) *Semaphore {
	if permits < 0 {
		panic("seqx: semaphore permits must be non-negative")
	}
	s := &Semaphore{}
	s.inner.permits = permits
	return s
}

// Wait records this waiter, then blocks until a permit is acquired.
func (s *Semaphore) Wait() {
	if s == nil {
		return
	}
	s.waiting.FetchAdd(1)
	s.inner.wait(nil)
}

// WaitTimeout is Wait bounded by d, reporting whether a permit was
// acquired. A timed-out waiter removes itself from the recorded count
// so Close does not over-wake.
func (s *Semaphore) WaitTimeout(d time.Duration) bool {
	if s == nil {
		return true
	}
	s.waiting.FetchAdd(1)
	timer := time.NewTimer(d)
	defer timer.Stop()
	if s.inner.wait(timer.C) {
		return true
	}
	s.waiting.Update(clampDecrement)
	return false
}

// TryWait acquires a permit without blocking, returning
// iox.ErrWouldBlock when none is available.
func (s *Semaphore) TryWait() error {
	if s == nil || s.inner.tryWait() {
		return nil
	}
	return iox.ErrWouldBlock
}

// Signal releases one permit, waking the longest-blocked waiter if
// any, and returns the waiter count recorded before the release.
// Over-signaling clamps the count at zero instead of letting it go
// negative.
func (s *Semaphore) Signal() int64 {
	if s == nil {
		return 0
	}
	old := s.waiting.Update(clampDecrement)
	s.inner.signal()
	return old
}

// Close drains the semaphore: one signal per recorded waiter, then
// the gate stays open so no present or future Wait can block forever
// on a torn-down throttle. Idempotent.
func (s *Semaphore) Close() {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return
	}
	for n := s.waiting.Load(); n > 0; n-- {
		s.inner.signal()
	}
	s.inner.drain()
}

func clampDecrement(n int64) int64 {
	if n > 0 {
		return n - 1
	}
	return 0
}
