// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqx provides lock-free synchronization primitives and
// executors for task sequences: chains of dynamically generated units
// of work where each task's result decides whether the chain continues
// with a new task or completes with a final value.
//
// # Architecture
//
//   - Primitives: compare-and-swap cells ([AtomicBool], [AtomicInt64],
//     [AtomicRef]) with a reusable retry combinator (Update), a
//     one-shot gate ([CountDownLatch]), and a self-draining counting
//     semaphore ([Semaphore]) that wakes every blocked waiter on Close.
//   - Tasks: [Task] is a type-erased unit of work; [NewTask] wraps a
//     strongly typed work function. A [Continuation] decides each
//     [Step]: [ContinueWith] or [Complete].
//   - Execution: Two strategies behind one contract.
//     [ConcurrentExecutor] re-submits every step onto a lock-free MPMC
//     work [Pool] backed by [code.hybscloud.com/lfq], optionally
//     throttled to a maximum number of in-flight tasks.
//     [ImmediateExecutor] trampolines on the calling goroutine for
//     deterministic debugging.
//   - Handles: [Execute] returns a typed [Handle] without blocking.
//     Await, AwaitTimeout, Poll and Cancel are the control surface;
//     Poll reports [code.hybscloud.com/iox.ErrWouldBlock] while the
//     sequence is still running.
//
// # Error handling
//
//   - The terminal slot is a [code.hybscloud.com/kont.Either]: a
//     failing task short-circuits the sequence and Await re-surfaces
//     that exact error; no error is silently swallowed.
//   - AwaitTimeout fails with [*TimeoutError] carrying the last task
//     id recorded by an id-tracking executor.
//   - Misuse (non-positive latch count, negative permits) is a fatal
//     precondition and panics.
//
// # Example
//
//	ex := seqx.NewConcurrentExecutor("crawl",
//		seqx.WithMaxConcurrentTasks(4))
//	defer ex.Close()
//
//	first := seqx.NewTask(func() (int, error) { return 1, nil })
//	h := seqx.Execute(ex, first, func(_ seqx.Task, result any) seqx.Step[int] {
//		n := result.(int)
//		if n >= 100 {
//			return seqx.Complete[int](n)
//		}
//		return seqx.ContinueWith[int](seqx.NewTask(func() (int, error) {
//			return n * 2, nil
//		}))
//	})
//	n, err := h.AwaitTimeout(time.Second)
package seqx
