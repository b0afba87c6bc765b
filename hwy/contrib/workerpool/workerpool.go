// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs batch kernels over many fixed vectors on a set of
// persistent goroutines. A Pool is created once and shared by every batch
// call, so a batch pays neither goroutine spawn nor channel allocation.
//
// A nil *Pool is valid and runs all work on the calling goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := kernel.ApplyBinaryBatch[[3]float32, float32](pool, kernel.Add[float32]{}, dst, a, b)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and every send on workC.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS goroutines when
// numWorkers <= 0. The workers run until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after pending work completes. It is safe to call
// more than once and concurrently with ParallelFor: calls already handing
// out work finish on the workers, later calls run on the calling goroutine.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// acquire reserves the pool for handing out work. It returns false when work
// must run on the calling goroutine; otherwise the caller sends its items
// and then calls p.mu.RUnlock.
func (p *Pool) acquire(workers int) bool {
	if p == nil || workers <= 1 {
		return false
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each range. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.NumWorkers(), n)
	if !p.acquire(workers) {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in ranges of batchSize indices. Idle
// workers take the next range from a shared counter, which balances load
// when ranges cost different amounts. It blocks until every range is done.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.NumWorkers(), numBatches)
	if !p.acquire(workers) {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := (int(nextBatch.Add(1)) - 1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
