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

package solverrun

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/solver"
)

func TestStartWaitProducesResult(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.LineCube())
	require.NoError(t, err)

	r := NewRun()

	var mu sync.Mutex
	var seen []solver.Solution
	r.Start(p, func(s solver.Solution) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})
	r.Wait()

	assert.False(t, r.IsRunning())
	assert.Equal(t, solver.OutcomeExhausted, r.Result().Outcome)
	assert.NotEmpty(t, seen)
}

func TestStartTwiceWhileRunningIsIgnored(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.RealProblem())
	require.NoError(t, err)

	r := NewRun()
	r.Start(p, nil)
	assert.True(t, r.IsRunning())

	// A second Start call while the first is in flight must not block or
	// panic - it just logs a warning and returns immediately.
	r.Start(p, nil)

	r.Stop()
	assert.False(t, r.IsRunning())
}

func TestStopRequestsGracefulCancellation(t *testing.T) {
	config.Setup()
	prevInterval := config.Settings.Solver.StatusPollInterval
	config.Settings.Solver.StatusPollInterval = 1
	defer func() { config.Settings.Solver.StatusPollInterval = prevInterval }()

	p, err := problem.Load(problem.RealProblem())
	require.NoError(t, err)

	r := NewRun()
	r.Start(p, nil)
	r.Stop()

	assert.Equal(t, solver.OutcomeCancelled, r.Result().Outcome)
	assert.True(t, r.Duration() >= 0)
	assert.True(t, r.Duration() < time.Minute)
}
