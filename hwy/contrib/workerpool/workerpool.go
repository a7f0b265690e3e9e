// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent fork-join pool for the parallel
// transform kernels. Workers are started once by New and reused by every
// ParallelFor or ForkJoin call until Close, so kernels that fork once per
// input pack do not spawn goroutines in their inner loop.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Each chunk builds a private partial; merges run one at a time.
//	workerpool.ForkJoin(pool, n,
//	    func(start, end int) []float32 { return partialFor(start, end) },
//	    func(partial []float32) { accumulate(total, partial) },
//	)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a channel.
//
// A nil *Pool is valid and runs everything on the caller. Close must not
// race with ParallelFor or ForkJoin.
type Pool struct {
	workers int
	tasks   chan func()
	stop    sync.Once
	closed  atomic.Bool
}

// New starts a pool of n workers. n <= 0 means GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan func(), 2*n),
	}
	for range n {
		go func() {
			for run := range p.tasks {
				run()
			}
		}()
	}
	return p
}

// NumWorkers returns the worker count. A nil pool reports 1, the caller.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after queued tasks finish. It is idempotent.
// A closed pool keeps working by running on the caller.
func (p *Pool) Close() {
	p.stop.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// span is a half-open index range [start, end).
type span struct{ start, end int }

// split cuts [0, n) into at most NumWorkers contiguous, non-empty spans of
// near-equal length.
func (p *Pool) split(n int) []span {
	parts := min(p.NumWorkers(), n)
	size := (n + parts - 1) / parts
	spans := make([]span, 0, parts)
	for start := 0; start < n; start += size {
		spans = append(spans, span{start, min(start+size, n)})
	}
	return spans
}

// ParallelFor calls fn once per span of [0, n) and waits for all of them.
// Spans are contiguous and disjoint; there are at most NumWorkers of them.
// A nil or closed pool, or a single span, calls fn(0, n) on the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() || min(p.workers, n) == 1 {
		fn(0, n)
		return
	}

	spans := p.split(n)
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for _, s := range spans {
		p.tasks <- func() {
			defer wg.Done()
			fn(s.start, s.end)
		}
	}
	wg.Wait()
}

// ForkJoin runs work on the spans of [0, n) like ParallelFor and passes
// each span's result to merge.
//
// work must only read shared state and return its partial result. merge
// calls are serialized under a mutex, so merge may update a shared
// accumulator without further locking. Merge order follows completion
// order. ForkJoin returns after the last merge.
func ForkJoin[P any](p *Pool, n int, work func(start, end int) P, merge func(partial P)) {
	var mu sync.Mutex
	p.ParallelFor(n, func(start, end int) {
		partial := work(start, end)

		mu.Lock()
		defer mu.Unlock()
		merge(partial)
	})
}
