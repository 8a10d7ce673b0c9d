// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent worker pool behind the
// parallel barcode driver. Unlike per-call goroutine spawning, a Pool is
// created once and reused across many scale submissions, and — unlike a
// generic data-parallel pool — each worker owns a private Engine for the
// lifetime of the pool rather than receiving one per task. That ownership
// is what lets a worker's expansion cache keep its monotone high-water
// mark across the many scales it is asked to reduce.
package workerpool

import (
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-rips/rips"
)

// orDiscard returns l, or a logger that throws everything away if l is nil.
func orDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Job is one unit of work submitted to a Pool: a reduction or extraction
// to run against the calling worker's own Engine.
type Job func(e *rips.Engine)

// Pool is a fixed-size pool of workers, each bound to its own *rips.Engine
// over a shared, read-only point store. Workers never see each other's
// engine, so no cache or column is ever touched by two goroutines.
type Pool struct {
	numWorkers int
	jobC       chan Job
	closeOnce  sync.Once
	closed     atomic.Bool
	wg         sync.WaitGroup
	log        *slog.Logger
}

// New creates a pool of numWorkers workers, each with its own Engine over
// points. If numWorkers <= 0, uses half of GOMAXPROCS, rounded up, per the
// "hardware parallelism / 2" sizing a reducer's memory footprint favors.
// logger may be nil.
func New(points *rips.PointStore, numWorkers int, logger *slog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = (runtime.GOMAXPROCS(0) + 1) / 2
		if numWorkers < 1 {
			numWorkers = 1
		}
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobC:       make(chan Job, numWorkers*2),
		log:        orDiscard(logger),
	}

	for i := range numWorkers {
		engine := rips.NewEngine(points)
		p.wg.Add(1)
		p.log.Info("worker spawned", "worker", i)
		go p.worker(i, engine)
	}

	return p
}

func (p *Pool) worker(id int, e *rips.Engine) {
	defer p.wg.Done()
	for job := range p.jobC {
		job(e)
	}
	p.log.Info("worker stopped", "worker", id)
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Close stops accepting new jobs and waits for queued jobs to finish.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobC)
	})
	p.wg.Wait()
}

// Future is the "valid / ready / get" handle the concurrency model calls
// for: Valid reports whether the future was ever submitted, Ready polls
// completion without blocking, and Get blocks until the result lands.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Valid reports whether f was returned by a real Submit call.
func (f *Future[T]) Valid() bool { return f != nil }

// Ready reports whether the result is available yet. It never blocks.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get blocks until the job completes and returns its result.
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.val, f.err
}

func (f *Future[T]) complete(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Submit queues fn to run on the next idle worker's engine and returns a
// future for its result. Submit blocks if the pool's bounded in-flight
// queue is full, which is exactly the back-pressure the driver wants: it
// never holds more in-flight scales than three times the worker count
// (one running on each worker plus a queue of twice the worker count).
//
// A free function rather than a method because Go methods cannot carry
// their own type parameters independent of the receiver's.
func Submit[T any](p *Pool, fn func(e *rips.Engine) (T, error)) *Future[T] {
	fut := newFuture[T]()
	job := Job(func(e *rips.Engine) {
		v, err := fn(e)
		fut.complete(v, err)
	})

	if p.closed.Load() {
		// Pool already closed: run inline so callers holding a reference
		// to a shut-down pool still get a valid, resolved future.
		job(nil)
		return fut
	}

	p.jobC <- job
	return fut
}
