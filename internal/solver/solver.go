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

// Package solver implements the iterative depth-first backtracking search
// that assigns every piece of a problem.Problem one orientation each,
// without overlap, inside its Space. The search itself is single-threaded
// and synchronous - the only concurrency-shaped primitives anywhere in
// this package are the two cooperative flags a caller polls it with
// (solver.Signal), mirrored from the original's signal-handler design.
package solver

import (
	"github.com/op/go-logging"

	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/geom"
	myLogging "github.com/gopacker/polycube/internal/logging"
	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/util"
)

// Signal is the cooperative stop/status-dump pair the solver polls every
// config.Settings.Solver.StatusPollInterval outer-loop iterations (10000
// by default), not on every iteration. Build one with NewSignal: the zero
// value holds nil flags and is not usable.
type Signal struct {
	keepRunning *util.Bool
	printStatus *util.Bool
}

// NewSignal returns a Signal initialised to run freely with no pending
// status request.
func NewSignal() *Signal {
	return &Signal{
		keepRunning: util.NewBool(true),
		printStatus: util.NewBool(false),
	}
}

// Stop requests a graceful stop at the next poll, mirroring SIGINT.
func (s *Signal) Stop() { s.keepRunning.Store(false) }

// RequestStatus requests a one-shot status dump at the next poll,
// mirroring SIGUSR1.
func (s *Signal) RequestStatus() { s.printStatus.Store(true) }

// candidateEntry is one not-yet-placed piece's surviving orientations at
// some depth.
type candidateEntry struct {
	pieceIdx     int
	orientations []geom.Bitboard
}

// frame is one level of the search's explicit stack, per the data
// model's "search frame": the fill inherited from the level above,
// which piece was chosen at this depth and which of its orientations,
// and the candidate table of orientations that fit this frame's fill.
type frame struct {
	fill         geom.Bitboard
	pieceIdx     int
	orientIdx    int // index into candidates[pieceIdx].orientations currently being tried
	candidates   []candidateEntry
	placedPieces []bool // which piece indices were placed above this depth (not this frame's own piece)
}

// Solver runs the iterative backtracking search over one problem.Problem.
type Solver struct {
	problem *problem.Problem
	signal  *Signal
	stats   Stats
	log     *logging.Logger

	onSolution func(Solution)
}

// New constructs a Solver for p. signal may be nil, in which case the
// search runs uninterruptibly to completion or exhaustion.
func New(p *problem.Problem, signal *Signal) *Solver {
	if signal == nil {
		signal = NewSignal()
	}
	return &Solver{problem: p, signal: signal, log: myLogging.GetSolverLog()}
}

// OnSolution registers a callback invoked for every solution emitted,
// in addition to it being recorded in the returned Result.
func (s *Solver) OnSolution(f func(Solution)) {
	s.onSolution = f
}

// Run executes the backtracking search to completion, to the first
// solution (if config.Settings.Solver.StopAtFirstSolution), or until
// Signal.Stop is observed.
func (s *Solver) Run() Result {
	sp := s.problem.Space
	n := len(s.problem.Pieces)

	rootPlaced := make([]bool, n)
	rootCandidates := s.buildCandidates(sp.NewBitboard(), rootPlaced)

	if len(rootCandidates) == 0 {
		return Result{Outcome: OutcomeExhausted}
	}

	first := pickMRV(rootCandidates)

	stack := make([]*frame, 0, n+1)
	stack = append(stack, &frame{
		fill:         sp.NewBitboard(),
		pieceIdx:     first.pieceIdx,
		orientIdx:    0,
		candidates:   rootCandidates,
		placedPieces: rootPlaced,
	})

	var solutions []Solution
	statusInterval := config.Settings.Solver.StatusPollInterval
	if statusInterval <= 0 {
		statusInterval = 10000
	}

	for len(stack) > 0 {
		s.stats.NodesVisited++

		if s.stats.NodesVisited%int64(statusInterval) == 0 {
			if !s.signal.keepRunning.Load() {
				return Result{Outcome: OutcomeCancelled, Stats: s.stats, Solutions: solutions, Depth: len(stack)}
			}
			if s.signal.printStatus.Swap(false) {
				s.log.Infof("status: depth=%d %s", len(stack), s.stats.String())
			}
		}

		top := stack[len(stack)-1]
		entry := findCandidate(top.candidates, top.pieceIdx)
		if entry == nil || top.orientIdx >= len(entry.orientations) {
			// ascend: this piece's candidate list exhausted at this depth
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			parent := stack[len(stack)-1]
			parent.orientIdx++
			continue
		}

		chosen := entry.orientations[top.orientIdx]
		if config.DEBUG && !chosen.Disjoint(top.fill) {
			panic("solver: candidate orientation overlaps the current fill")
		}
		s.stats.PermutationsTried++

		nextFill := top.fill.Union(chosen)
		nextPlaced := make([]bool, n)
		copy(nextPlaced, top.placedPieces)
		nextPlaced[top.pieceIdx] = true

		if len(stack) == n {
			sol := Solution{Placements: s.recordPath(stack, top.pieceIdx, top.orientIdx)}
			solutions = append(solutions, sol)
			s.stats.Solutions++
			if s.onSolution != nil {
				s.onSolution(sol)
			}
			if config.Settings.Solver.StopAtFirstSolution {
				return Result{Outcome: OutcomeStoppedAtFirstSolution, Stats: s.stats, Solutions: solutions, Depth: len(stack)}
			}
			// treat emission as an immediate ascend to keep enumerating
			top.orientIdx++
			continue
		}

		nextCandidates, potential := s.buildCandidatesWithPotential(nextFill, nextPlaced)

		if config.Settings.Solver.UseOrientationPruning && !s.candidatesAllNonEmpty(nextCandidates, nextPlaced) {
			s.stats.BackoutNoOrientations++
			top.orientIdx++
			continue
		}

		if s.problem.SpaceWillBeFull && config.Settings.Solver.UsePotentialFillPruning {
			full := sp.FullMask()
			if !potential.Equal(full) {
				s.stats.BackoutPotentialFill++
				top.orientIdx++
				continue
			}
		}

		if config.Settings.Solver.UseDivisibilityPruning && s.problem.CommonCellSize > 0 {
			if !emptySpacesAreFactors(sp, nextFill, s.problem.CommonCellSize) {
				s.stats.BackoutDivisibility++
				top.orientIdx++
				continue
			}
		}

		next := pickMRV(nextCandidates)
		stack = append(stack, &frame{
			fill:         nextFill,
			pieceIdx:     next.pieceIdx,
			orientIdx:    0,
			candidates:   nextCandidates,
			placedPieces: nextPlaced,
		})
	}

	return Result{Outcome: OutcomeExhausted, Stats: s.stats, Solutions: solutions}
}

// recordPath walks the frame stack (including the about-to-descend top
// frame's chosen orientation) into the piece-id/orientation-index
// sequence a Solution reports. A frame's orientIdx indexes its filtered
// candidate list; the Placement carries the matching index into the
// piece's full Orientations list.
func (s *Solver) recordPath(stack []*frame, topPieceIdx, topOrientIdx int) []Placement {
	fullIdx := func(f *frame, pieceIdx, candIdx int) int {
		chosen := findCandidate(f.candidates, pieceIdx).orientations[candIdx]
		for i, o := range s.problem.Pieces[pieceIdx].Orientations {
			if o.Equal(chosen) {
				return i
			}
		}
		return -1
	}
	path := make([]Placement, 0, len(stack))
	for i := 0; i < len(stack)-1; i++ {
		f := stack[i]
		path = append(path, Placement{PieceID: s.problem.Pieces[f.pieceIdx].ID, OrientationIdx: fullIdx(f, f.pieceIdx, f.orientIdx)})
	}
	top := stack[len(stack)-1]
	path = append(path, Placement{PieceID: s.problem.Pieces[topPieceIdx].ID, OrientationIdx: fullIdx(top, topPieceIdx, topOrientIdx)})
	return path
}

// buildCandidates filters every not-yet-placed piece's full orientation
// list down to those disjoint from fill.
func (s *Solver) buildCandidates(fill geom.Bitboard, placed []bool) []candidateEntry {
	candidates, _ := s.buildCandidatesWithPotential(fill, placed)
	return candidates
}

// buildCandidatesWithPotential is buildCandidates plus the union of every
// surviving orientation across every still-unplaced piece, which the
// SPACE_WILL_BE_FULL pruner compares against the full mask.
func (s *Solver) buildCandidatesWithPotential(fill geom.Bitboard, placed []bool) ([]candidateEntry, geom.Bitboard) {
	potential := fill.Clone()
	var candidates []candidateEntry

	for i, piece := range s.problem.Pieces {
		if placed[i] {
			continue
		}
		var fits []geom.Bitboard
		for _, o := range piece.Orientations {
			if o.Disjoint(fill) {
				fits = append(fits, o)
				potential = potential.Union(o)
			}
		}
		candidates = append(candidates, candidateEntry{pieceIdx: i, orientations: fits})
	}
	return candidates, potential
}

func (s *Solver) candidatesAllNonEmpty(candidates []candidateEntry, placed []bool) bool {
	for i, p := range placed {
		if p {
			continue
		}
		entry := findCandidate(candidates, i)
		if entry == nil || len(entry.orientations) == 0 {
			return false
		}
	}
	return true
}

func findCandidate(candidates []candidateEntry, pieceIdx int) *candidateEntry {
	for i := range candidates {
		if candidates[i].pieceIdx == pieceIdx {
			return &candidates[i]
		}
	}
	return nil
}

// pickMRV selects the candidate entry with the fewest remaining
// orientations (min-remaining-values), breaking ties by lowest piece
// index - which, since candidates are built in piece-index order, is
// simply the first entry achieving the minimum.
func pickMRV(candidates []candidateEntry) candidateEntry {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.orientations) < len(best.orientations) {
			best = c
		}
	}
	return best
}
