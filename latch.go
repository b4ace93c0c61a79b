// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import "time"

// CountDownLatch is a one-shot gate built from an atomic counter and a
// broadcast door. Once the remaining count reaches zero the latch is
// permanently open: all past and future waits return immediately.
type CountDownLatch struct {
	remaining AtomicInt64
	opened    AtomicBool
	door      chan struct{}
}

// NewCountDownLatch creates a latch that opens after count calls to
// CountDown. Panics if count is not positive.
func NewCountDownLatch(count int64) *CountDownLatch {
	if count <= 0 {
		panic("seqx: latch count must be positive")
	}
	l := &CountDownLatch{door: make(chan struct{})}
	l.remaining.Store(count)
	return l
}

// CountDown decrements the remaining count; counting down past zero is
// a no-op. The decrement that crosses zero wakes all waiters. The open
// flag tolerates redundant crossings: waking more than once is
// harmless, closing the door twice is not.
func (l *CountDownLatch) CountDown() {
	old := l.remaining.Update(func(n int64) int64 {
		if n <= 0 {
			return n
		}
		return n - 1
	})
	if old == 1 {
		l.open()
	}
}

func (l *CountDownLatch) open() {
	if l.opened.CompareAndSwap(false, true) {
		close(l.door)
	}
}

// Opened reports whether the latch is open, without blocking or
// taking any lock.
func (l *CountDownLatch) Opened() bool { return l.remaining.Load() <= 0 }

// Await blocks until the latch opens.
func (l *CountDownLatch) Await() {
	if l.Opened() {
		return
	}
	<-l.door
}

// AwaitTimeout blocks until the latch opens or d elapses, reporting
// whether the latch opened. When an open races the deadline, the open
// wins: AwaitTimeout never reports a timeout on an open latch.
func (l *CountDownLatch) AwaitTimeout(d time.Duration) bool {
	if l.Opened() {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-l.door:
		return true
	case <-timer.C:
		select {
		case <-l.door:
			return true
		default:
			return false
		}
	}
}
