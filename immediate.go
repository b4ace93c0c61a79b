// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

// ImmediateExecutor runs the whole sequence inline on the Execute
// caller's goroutine, one task after another. It exists for
// deterministic debugging of sequence logic without
// concurrency-induced nondeterminism: by the time Execute returns the
// handle is already terminal, so Await never blocks.
type ImmediateExecutor struct{}

// NewImmediateExecutor creates the serial strategy.
func NewImmediateExecutor() *ImmediateExecutor {
	return &ImmediateExecutor{}
}

// executeSequence is a trampoline: continuing with the next task
// iterates instead of recursing, so arbitrarily long chains cannot
// exhaust the stack.
func (e *ImmediateExecutor) executeSequence(core *handleCore, t Task, step stepFunc) {
	for {
		if core.cancelled.Load() {
			return
		}
		next, more := step(t, noop)
		if !more {
			return
		}
		t = next
	}
}
