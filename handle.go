// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import (
	"fmt"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// TimeoutError reports that AwaitTimeout gave up before the sequence
// reached a terminal state. TaskID is the id last recorded by an
// id-tracking executor, or UntrackedTaskID. The sequence keeps running
// in the background after a timed-out await unless cancelled.
type TimeoutError struct {
	TaskID int64
}

func (e *TimeoutError) Error() string {
	if e.TaskID == UntrackedTaskID {
		return "seqx: await timed out"
	}
	return fmt.Sprintf("seqx: await timed out at task %d", e.TaskID)
}

// handleCore is the type-erased sequence state shared between a typed
// [Handle] and the executing workers. The terminal slot is written
// exactly once, by whichever worker completes the sequence, and the
// completion latch publishes that single write to every awaiter; no
// other mutual exclusion is needed.
type handleCore struct {
	serial    Serial
	trackID   bool
	cancelled AtomicBool
	lastTask  AtomicInt64
	done      *CountDownLatch
	terminal  kont.Either[error, any]
}

func newHandleCore() *handleCore {
	c := &handleCore{
		serial: nextSerial(),
		done:   NewCountDownLatch(1),
	}
	c.lastTask.Store(UntrackedTaskID)
	return c
}

// complete writes the sole terminal result and opens the latch.
func (c *handleCore) complete(result any) {
	c.terminal = kont.Right[error](result)
	c.done.CountDown()
}

// fail writes the sole terminal error and opens the latch.
func (c *handleCore) fail(err error) {
	c.terminal = kont.Left[error, any](err)
	c.done.CountDown()
}

func (c *handleCore) recordTask(t Task) {
	if c.trackID {
		c.lastTask.Store(t.ID())
	}
}

// Handle is the caller-facing control surface of one in-flight
// sequence, strongly typed by the sequence's final result. It is
// created per [Execute] call and safe for use from any goroutine.
// Dropping a handle does not stop outstanding background work; the
// work simply has no observer once cancelled or complete.
type Handle[R any] struct {
	core *handleCore
}

// Serial returns the serial number assigned to this sequence.
func (h *Handle[R]) Serial() Serial { return h.core.serial }

// Await blocks until the sequence reaches a terminal state, then
// returns the final result or re-surfaces the failing task's error
// verbatim. A cancelled sequence never reaches a terminal state; use
// AwaitTimeout when cancellation is possible.
func (h *Handle[R]) Await() (R, error) {
	h.core.done.Await()
	return h.terminal()
}

// AwaitTimeout is Await bounded by d. On timeout it fails with a
// *TimeoutError carrying the last tracked task id.
func (h *Handle[R]) AwaitTimeout(d time.Duration) (R, error) {
	if !h.core.done.AwaitTimeout(d) {
		var zero R
		return zero, &TimeoutError{TaskID: h.core.lastTask.Load()}
	}
	return h.terminal()
}

// Poll returns the terminal result without blocking, reporting
// iox.ErrWouldBlock while the sequence is still running.
func (h *Handle[R]) Poll() (R, error) {
	if !h.core.done.Opened() {
		var zero R
		return zero, iox.ErrWouldBlock
	}
	return h.terminal()
}

// Cancel prevents the next step from being scheduled or executed. It
// is idempotent, cooperative (a task already mid-execution is not
// interrupted), and a harmless no-op once the sequence is terminal.
func (h *Handle[R]) Cancel() {
	h.core.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (h *Handle[R]) Cancelled() bool { return h.core.cancelled.Load() }

func (h *Handle[R]) terminal() (R, error) {
	if h.core.terminal.IsLeft() {
		var zero R
		err, _ := h.core.terminal.GetLeft()
		return zero, err
	}
	v, _ := h.core.terminal.GetRight()
	// Comma-ok tolerates a nil result when R is an interface type.
	r, _ := v.(R)
	return r, nil
}
