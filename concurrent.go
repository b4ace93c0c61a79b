// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import "runtime"

// Option configures a [ConcurrentExecutor].
type Option func(*config)

type config struct {
	qos     QoS
	workers int
	trackID bool
	permits int
	pool    Submitter
}

// WithQoS sets the owned pool's quality-of-service tag.
// Default is QoSUserInitiated.
func WithQoS(q QoS) Option {
	return func(c *config) { c.qos = q }
}

// WithWorkers sets the owned pool's worker count.
// Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithTaskIDTracking records each finished task's id on the handle,
// at a small synchronization cost, so a later *TimeoutError can
// report which step the sequence was at.
func WithTaskIDTracking() Option {
	return func(c *config) { c.trackID = true }
}

// WithMaxConcurrentTasks caps in-flight task executions across all
// sequences of the executor. It caps executions, not sequence depth.
// Default is unbounded.
func WithMaxConcurrentTasks(n int) Option {
	return func(c *config) { c.permits = n }
}

// WithSubmitter runs work on an externally owned work queue instead
// of an owned [Pool]. Close then leaves the submitter alone.
func WithSubmitter(s Submitter) Option {
	return func(c *config) { c.pool = s }
}

// ConcurrentExecutor dispatches every step of every sequence onto a
// work pool, optionally throttled by a self-draining [Semaphore]
// shared across all sequences it executes. Recursion across steps is
// re-submission: each continuation becomes a fresh work item, so
// stack depth never grows with sequence length.
type ConcurrentExecutor struct {
	name     string
	pool     Submitter
	owned    *Pool
	throttle *Semaphore
	trackID  bool
}

// NewConcurrentExecutor creates a pool-backed executor. name is used
// for worker diagnostics.
func NewConcurrentExecutor(name string, opts ...Option) *ConcurrentExecutor {
	cfg := config{qos: QoSUserInitiated, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &ConcurrentExecutor{name: name, trackID: cfg.trackID}
	if cfg.pool != nil {
		e.pool = cfg.pool
	} else {
		e.owned = NewPool(name, cfg.workers, cfg.qos)
		e.pool = e.owned
	}
	if cfg.permits > 0 {
		e.throttle = NewSemaphore(int64(cfg.permits))
	}
	return e
}

// Name returns the executor's diagnostic name.
func (e *ConcurrentExecutor) Name() string { return e.name }

// Close tears down the executor. The throttle drains first so steps
// blocked on a permit wake instead of leaking, then the owned pool
// (if any) stops. Sequences already terminal are unaffected.
func (e *ConcurrentExecutor) Close() {
	e.throttle.Close()
	if e.owned != nil {
		e.owned.Close()
	}
}

// executeSequence submits the bootstrap work item. The first permit
// is acquired by the worker that picks the item up, never by the
// Execute caller.
func (e *ConcurrentExecutor) executeSequence(core *handleCore, first Task, step stepFunc) {
	core.trackID = e.trackID
	e.pool.Submit(func() {
		e.throttle.Wait()
		e.run(core, first, step)
	})
}

// run executes one step on a pool worker with the throttling permit
// already held, then acquires the next permit and re-submits itself.
// The acquire blocks this dispatching worker, not the Execute caller.
func (e *ConcurrentExecutor) run(core *handleCore, t Task, step stepFunc) {
	if core.cancelled.Load() {
		e.release()
		return
	}
	next, more := step(t, e.release)
	if !more {
		return
	}
	e.throttle.Wait()
	e.pool.Submit(func() { e.run(core, next, step) })
}

func (e *ConcurrentExecutor) release() {
	e.throttle.Signal()
}
