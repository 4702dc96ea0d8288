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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// out groups large node/permutation counts with thousands separators in
// status lines, the same way the original engine formatted its own
// search statistics.
var out = message.NewPrinter(language.English)

// Stats tracks backtracking progress, mirroring the backout counters the
// original puzzle solver kept per pruner.
type Stats struct {
	NodesVisited int64
	Solutions    int64

	BackoutNoOrientations int64
	BackoutPotentialFill  int64
	BackoutDivisibility   int64

	PermutationsTried int64
}

// String renders a one-line summary for status dumps.
func (s Stats) String() string {
	return out.Sprintf(
		"nodes=%d solutions=%d backouts[no-orient=%d potential-fill=%d divisibility=%d] permutations=%d",
		s.NodesVisited, s.Solutions,
		s.BackoutNoOrientations, s.BackoutPotentialFill, s.BackoutDivisibility,
		s.PermutationsTried,
	)
}

// Outcome is why the solver returned.
type Outcome int

const (
	// OutcomeExhausted: the full search space was explored.
	OutcomeExhausted Outcome = iota
	// OutcomeStoppedAtFirstSolution: stop_at_first_solution was set and a
	// solution was emitted.
	OutcomeStoppedAtFirstSolution
	// OutcomeCancelled: keep_running was observed false mid-search.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeStoppedAtFirstSolution:
		return "stopped-at-first-solution"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Placement names which piece id was placed at a given depth of an
// emitted solution, and the index of the chosen orientation in that
// piece's Orientations list.
type Placement struct {
	PieceID        int
	OrientationIdx int
}

// Solution is one emitted placement sequence: for each depth, the piece
// placed there and the index of the orientation chosen for it, in the
// order they were placed.
type Solution struct {
	Placements []Placement
}

// Result is what Run returns: the final outcome, accumulated stats, and
// every solution emitted along the way (exactly one if StopAtFirstSolution
// is set and a solution was found).
type Result struct {
	Outcome   Outcome
	Stats     Stats
	Solutions []Solution
	// Depth is how deep the search had descended when it stopped; only
	// meaningful for OutcomeCancelled.
	Depth int
}
