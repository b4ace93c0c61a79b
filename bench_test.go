// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx_test

import (
	"testing"

	"code.hybscloud.com/seqx"
)

// BenchmarkAtomicInt64FetchAdd measures the uncontended fetch-add path.
func BenchmarkAtomicInt64FetchAdd(b *testing.B) {
	b.ReportAllocs()
	var n seqx.AtomicInt64
	for b.Loop() {
		n.FetchAdd(1)
	}
}

// BenchmarkAtomicInt64Update measures the CAS retry combinator without
// contention.
func BenchmarkAtomicInt64Update(b *testing.B) {
	b.ReportAllocs()
	var n seqx.AtomicInt64
	inc := func(old int64) int64 { return old + 1 }
	for b.Loop() {
		n.Update(inc)
	}
}

// BenchmarkLatchFastPath measures Await on an already-open latch.
func BenchmarkLatchFastPath(b *testing.B) {
	b.ReportAllocs()
	l := seqx.NewCountDownLatch(1)
	l.CountDown()
	for b.Loop() {
		l.Await()
	}
}

// BenchmarkImmediateSequence measures a 16-step sequence on the serial
// strategy, trampoline included.
func BenchmarkImmediateSequence(b *testing.B) {
	b.ReportAllocs()
	ex := seqx.NewImmediateExecutor()
	for b.Loop() {
		h := seqx.Execute(ex,
			seqx.NewTask(func() (int, error) { return 1, nil }),
			func(_ seqx.Task, result any) seqx.Step[int] {
				n := result.(int)
				if n >= 16 {
					return seqx.Complete[int](n)
				}
				return seqx.ContinueWith[int](seqx.NewTask(func() (int, error) {
					return n + 1, nil
				}))
			})
		if _, err := h.Poll(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConcurrentSingleStep measures one-task sequences end to end
// across the pool boundary.
func BenchmarkConcurrentSingleStep(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	ex := seqx.NewConcurrentExecutor("bench", seqx.WithWorkers(4))
	defer ex.Close()
	for b.Loop() {
		h := seqx.Execute(ex,
			seqx.NewTask(func() (int, error) { return 42, nil }),
			completeInt)
		if _, err := h.Await(); err != nil {
			b.Fatal(err)
		}
	}
}
