// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

// Executor runs task sequences under one scheduling strategy.
// Strategies see only type-erased cores and step closures; sequence
// typing lives in the free [Execute] function, since Go methods cannot
// introduce type parameters.
type Executor interface {
	// executeSequence drives a sequence from first, calling step once
	// per task until step reports the sequence ended or the core is
	// cancelled.
	executeSequence(core *handleCore, first Task, step stepFunc)
}

// stepFunc runs a single task and decides what follows. executed is
// called the moment the task's own work has finished, before the
// continuation runs; the concurrent strategy releases its throttling
// permit there, so the permit caps in-flight task executions rather
// than continuation latency. more is false once the sequence reached
// a terminal state.
type stepFunc func(t Task, executed func()) (next Task, more bool)

func noop() {}

// Execute starts the sequence beginning at first on ex. Each time a
// task finishes, cont decides whether the sequence continues with
// another task or completes with a final R. Within one sequence, a
// task never begins before the previous task's continuation decision;
// independent sequences are unordered with respect to each other.
//
// On [ConcurrentExecutor], Execute returns the handle immediately and
// the handle is the only deliberate blocking point. On
// [ImmediateExecutor], the sequence has already finished when Execute
// returns.
func Execute[R any](ex Executor, first Task, cont Continuation[R]) *Handle[R] {
	core := newHandleCore()
	step := func(t Task, executed func()) (Task, bool) {
		result, err := t.Execute()
		if err != nil {
			executed()
			core.fail(err)
			return nil, false
		}
		core.recordTask(t)
		executed()
		next := cont(t, result)
		if next.terminal {
			core.complete(next.result)
			return nil, false
		}
		return next.next, true
	}
	ex.executeSequence(core, first, step)
	return &Handle[R]{core: core}
}
