// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

// UntrackedTaskID marks a task carrying no diagnostic identifier.
const UntrackedTaskID int64 = -1

// Task is a type-erased unit of work. Execute runs the work once and
// produces an opaque result; the [Continuation] receiving it is
// responsible for interpreting the value. A Task is immutable once
// constructed, owned by the sequence step currently holding it, and
// discarded after execution.
type Task interface {
	// ID returns the diagnostic identifier, or UntrackedTaskID.
	// Ids exist solely to make await timeouts diagnosable.
	ID() int64
	// Execute runs the work, returning the type-erased result or the
	// task's own failure.
	Execute() (any, error)
}

// task adapts a strongly typed work function to the type-erased Task
// contract. One wrapper per concrete result type; erasure happens at
// the Execute boundary, mirroring how handles stay strongly typed per
// sequence while individual tasks are not.
type task[R any] struct {
	id   int64
	work func() (R, error)
}

// NewTask wraps a strongly typed work function as an untracked [Task].
func NewTask[R any](work func() (R, error)) Task {
	return &task[R]{id: UntrackedTaskID, work: work}
}

// NewTaskWithID wraps a strongly typed work function as a [Task]
// carrying id.
func NewTaskWithID[R any](id int64, work func() (R, error)) Task {
	return &task[R]{id: id, work: work}
}

func (t *task[R]) ID() int64 { return t.id }

func (t *task[R]) Execute() (any, error) {
	r, err := t.work()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Step describes what a sequence does after a task finishes:
// [ContinueWith] another task, or [Complete] with a final result of
// type R.
type Step[R any] struct {
	next     Task
	result   R
	terminal bool
}

// ContinueWith continues the sequence with next.
func ContinueWith[R any](next Task) Step[R] {
	return Step[R]{next: next}
}

// Complete terminates the sequence with result.
func Complete[R any](result R) Step[R] {
	return Step[R]{result: result, terminal: true}
}

// Continuation decides each sequence step. It receives the task that
// just finished together with its type-erased result. It runs on
// whichever worker finished the task and must be safe to invoke
// concurrently across independent sequences. Task failures belong to
// tasks: a continuation that needs to abort continues with a failing
// task.
type Continuation[R any] func(finished Task, result any) Step[R]
