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

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/geom"
	"github.com/gopacker/polycube/internal/problem"
)

func cell(x, y, z int) geom.Cell { return geom.Cell{X: x, Y: y, Z: z} }

// domino is a 1x1x2 box with a single piece covering both its cells: the
// box can only ever be filled one way, so this is the simplest possible
// exactly-one-solution fixture.
func domino(t *testing.T) *problem.Problem {
	t.Helper()
	def := problem.Def{
		W: 1, H: 1, D: 2,
		Pieces: []problem.PieceDef{
			{Name: "domino", Cells: []geom.Cell{cell(0, 0, 0), cell(0, 0, 1)}},
		},
	}
	p, err := problem.Load(def)
	require.NoError(t, err)
	return p
}

// singleCellLine is a 1x1x3 box with one single-cell piece: it does not
// fill the box, and has exactly three placements (one per z), each of
// which is independently a complete (if partial) solution.
func singleCellLine(t *testing.T) *problem.Problem {
	t.Helper()
	def := problem.Def{
		W: 1, H: 1, D: 3,
		Pieces: []problem.PieceDef{
			{Name: "dot", Cells: []geom.Cell{cell(0, 0, 0)}},
		},
	}
	p, err := problem.Load(def)
	require.NoError(t, err)
	return p
}

func TestSolveSinglePieceFillsBoxExactlyOneWay(t *testing.T) {
	config.Setup()
	p := domino(t)
	assert.True(t, p.SpaceWillBeFull)

	result := New(p, nil).Run()

	assert.Equal(t, OutcomeExhausted, result.Outcome)
	require.Len(t, result.Solutions, 1)
	assert.Equal(t, int64(1), result.Stats.Solutions)
}

func TestSolveSingleCellHasThreePlacements(t *testing.T) {
	config.Setup()
	p := singleCellLine(t)
	assert.False(t, p.SpaceWillBeFull)

	result := New(p, nil).Run()

	assert.Equal(t, OutcomeExhausted, result.Outcome)
	assert.Len(t, result.Solutions, 3)
}

func TestSolveUnsolvableCubeHasZeroSolutions(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.UnsolvableCube())
	require.NoError(t, err)
	assert.True(t, p.SpaceWillBeFull)

	result := New(p, nil).Run()

	assert.Equal(t, OutcomeExhausted, result.Outcome)
	assert.Empty(t, result.Solutions)
	assert.Equal(t, int64(0), result.Stats.Solutions)
}

func TestSolveLineCubeFindsSolutions(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.LineCube())
	require.NoError(t, err)

	result := New(p, nil).Run()

	assert.Equal(t, OutcomeExhausted, result.Outcome)
	assert.NotEmpty(t, result.Solutions)
}

func TestStopAtFirstSolutionReturnsExactlyOne(t *testing.T) {
	config.Setup()
	prev := config.Settings.Solver.StopAtFirstSolution
	config.Settings.Solver.StopAtFirstSolution = true
	defer func() { config.Settings.Solver.StopAtFirstSolution = prev }()

	p := singleCellLine(t)
	result := New(p, nil).Run()

	assert.Equal(t, OutcomeStoppedAtFirstSolution, result.Outcome)
	require.Len(t, result.Solutions, 1)
}

func TestOnSolutionCallbackFiresPerSolution(t *testing.T) {
	config.Setup()
	p := singleCellLine(t)

	count := 0
	s := New(p, nil)
	s.OnSolution(func(Solution) { count++ })
	result := s.Run()

	assert.Equal(t, len(result.Solutions), count)
}

func TestSignalStopCancelsSearch(t *testing.T) {
	config.Setup()
	prevInterval := config.Settings.Solver.StatusPollInterval
	config.Settings.Solver.StatusPollInterval = 1
	defer func() { config.Settings.Solver.StatusPollInterval = prevInterval }()

	p, err := problem.Load(problem.RealProblem())
	require.NoError(t, err)

	sig := NewSignal()
	sig.Stop()

	result := New(p, sig).Run()

	assert.Equal(t, OutcomeCancelled, result.Outcome)
}

func TestBackoutsCountedOnUnsolvableCube(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.UnsolvableCube())
	require.NoError(t, err)

	result := New(p, nil).Run()

	// No tiling exists, so every descent from the root is backed out by
	// one of the pruners; with the default settings it is the
	// no-orientations check, since the other piece never fits the
	// complement of the first.
	assert.True(t, result.Stats.BackoutPotentialFill > 0 || result.Stats.BackoutDivisibility > 0 || result.Stats.BackoutNoOrientations > 0)
}
