//
// polycube - 3D polycube packing solver
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package solverrun wraps solver.Solver with the asynchronous start/stop/wait
// surface a CLI or signal handler needs: the search itself stays a plain
// synchronous call, and this package is the only place that runs it on a
// background goroutine.
package solverrun

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	myLogging "github.com/gopacker/polycube/internal/logging"
	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/solver"
	"github.com/gopacker/polycube/internal/util"
)

// Run wraps one in-flight or completed solver.Solver invocation.
type Run struct {
	log *logging.Logger

	// initSemaphore is acquired by Start before launching the goroutine
	// and released by the goroutine once it has grabbed isRunning, purely
	// so Start can block until the goroutine has actually begun before
	// returning. It carries no information about whether a search is
	// still in flight - only isRunning does.
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted
	signal        *solver.Signal

	startTime time.Time
	duration  time.Duration
	result    solver.Result
}

// NewRun constructs an idle Run, ready for Start.
func NewRun() *Run {
	return &Run{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		signal:        solver.NewSignal(),
	}
}

// Start launches the search over p on a background goroutine. onSolution,
// if non-nil, is invoked synchronously on that goroutine for every
// solution as it's found - callers needing to touch shared state from it
// must synchronize themselves. Start returns once the goroutine has begun
// running, not once the search has finished; it does nothing (logging a
// warning) if a search is already running.
func (r *Run) Start(p *problem.Problem, onSolution func(solver.Solution)) {
	_ = r.initSemaphore.Acquire(context.Background(), 1)

	// built locally and handed to run() rather than stored on r up front:
	// a Start() call rejected by run()'s isRunning guard (a search is
	// already in flight) must never clobber the fields Stop/RequestStatus
	// act on for that in-flight search.
	signal := solver.NewSignal()

	go r.run(p, signal, onSolution)

	// wait until the goroutine has grabbed isRunning (and published
	// r.signal/r.startTime) before returning, so a caller that
	// immediately calls IsRunning, Stop or RequestStatus observes the
	// search that's actually running.
	_ = r.initSemaphore.Acquire(context.Background(), 1)
	r.initSemaphore.Release(1)
}

// run is launched by Start in its own goroutine. It claims isRunning
// itself - not the caller of Start - so the running flag is held for
// exactly the search's own lifetime, independent of how long Start took
// to launch it.
func (r *Run) run(p *problem.Problem, signal *solver.Signal, onSolution func(solver.Solution)) {
	if !r.isRunning.TryAcquire(1) {
		r.log.Warning("solver already running")
		r.initSemaphore.Release(1)
		return
	}
	defer r.isRunning.Release(1)

	r.signal = signal
	r.startTime = time.Now()

	s := solver.New(p, signal)
	if onSolution != nil {
		s.OnSolution(onSolution)
	}

	r.log.Infof("solving %dx%dx%d with %d pieces", p.Space.W, p.Space.H, p.Space.D, len(p.Pieces))

	// release the init phase lock to signal Start it may return
	r.initSemaphore.Release(1)

	result := s.Run()
	r.duration = time.Since(r.startTime)
	r.result = result
	nps := util.PerSecond(result.Stats.NodesVisited, r.duration)
	r.log.Infof("solve finished: %s in %s, %s nodes (%s nodes/s)", result.Outcome, r.duration, util.FormatLarge(float64(result.Stats.NodesVisited)), util.FormatLarge(float64(nps)))
}

// Stop requests a graceful stop, mirroring SIGINT, and blocks until the
// search has actually returned.
func (r *Run) Stop() {
	r.signal.Stop()
	r.Wait()
}

// RequestStatus asks the running search to log a one-line status summary
// at its next poll, mirroring SIGUSR1. A no-op if nothing is running.
func (r *Run) RequestStatus() {
	r.signal.RequestStatus()
}

// IsRunning reports whether a search is currently in flight.
func (r *Run) IsRunning() bool {
	if !r.isRunning.TryAcquire(1) {
		return true
	}
	r.isRunning.Release(1)
	return false
}

// Wait blocks until any in-flight search has finished.
func (r *Run) Wait() {
	_ = r.isRunning.Acquire(context.Background(), 1)
	r.isRunning.Release(1)
}

// Result returns the most recently completed search's result. Only
// meaningful after Wait (or Stop) has returned.
func (r *Run) Result() solver.Result {
	return r.result
}

// Duration returns how long the most recently completed search took.
func (r *Run) Duration() time.Duration {
	return r.duration
}
