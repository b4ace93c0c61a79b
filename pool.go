// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// QoS is the queue-level quality-of-service tag a work pool carries
// for diagnostics. It does not affect scheduling order.
type QoS uint8

const (
	QoSBackground QoS = iota
	QoSUtility
	QoSDefault
	QoSUserInitiated
	QoSUserInteractive
)

// Submitter is the work-queue contract consumed by
// [ConcurrentExecutor]: submit a unit of work, return promptly, run it
// on some worker goroutine.
type Submitter interface {
	Submit(work func())
}

// queueCapacity is the bounded capacity of the pool's MPMC work queue.
// Submissions beyond it back off on the submitting goroutine.
const queueCapacity = 1024

// Pool is a fixed-size worker pool draining a bounded lock-free MPMC
// queue. Workers back off adaptively (iox.Backoff) when the queue is
// empty instead of parking on a lock.
type Pool struct {
	name   string
	qos    QoS
	queue  lfq.Queue[func()]
	closed atomix.Uint32
	exited *CountDownLatch
}

// NewPool creates a pool running workers goroutines. name and qos are
// diagnostic. Panics if workers is not positive.
func NewPool(name string, workers int, qos QoS) *Pool {
	if workers <= 0 {
		panic("seqx: pool workers must be positive")
	}
	p := &Pool{
		name:   name,
		qos:    qos,
		queue:  lfq.NewMPMC[func()](queueCapacity),
		exited: NewCountDownLatch(int64(workers)),
	}
	for range workers {
		go p.worker()
	}
	return p
}

// Name returns the pool's diagnostic name.
func (p *Pool) Name() string { return p.name }

// QoS returns the pool's quality-of-service tag.
func (p *Pool) QoS() QoS { return p.qos }

// Submit enqueues work, backing off on the submitting goroutine while
// the queue is full. Submit never blocks a worker the pool depends on
// to drain. Work submitted after Close is dropped.
func (p *Pool) Submit(work func()) {
	var bo iox.Backoff
	for {
		if p.closed.Load() != 0 {
			return
		}
		err := p.queue.Enqueue(&work)
		if err == nil {
			if p.closed.Load() != 0 {
				// Close raced the enqueue: the workers may already have
				// drained the queue and exited, which would strand the
				// item. Pull one back out; submissions racing Close are
				// dropped either way.
				p.queue.Dequeue()
			}
			return
		}
		if !iox.IsWouldBlock(err) {
			return
		}
		bo.Wait()
	}
}

// worker drains the queue until the pool is closed and no more work
// can be dequeued.
func (p *Pool) worker() {
	defer p.exited.CountDown()
	var bo iox.Backoff
	for {
		work, err := p.queue.Dequeue()
		if err == nil {
			bo.Reset()
			work()
			continue
		}
		if p.closed.Load() != 0 {
			return
		}
		bo.Wait()
	}
}

// Close stops the pool: further submissions are dropped, queued work
// is drained best effort, and Close returns once every worker has
// exited. Safe to call more than once.
func (p *Pool) Close() {
	if p.closed.Add(1) == 1 {
		// No further enqueues; lift the FAA threshold so consumers
		// can fully drain.
		if d, ok := p.queue.(lfq.Drainer); ok {
			d.Drain()
		}
	}
	p.exited.Await()
}
