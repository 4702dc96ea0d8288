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

// Package orientation enumerates the distinct rigid placements of a piece
// template inside a Space: every (axis, quarter-turn, translation)
// combination, generated exhaustively and deduplicated, rather than from
// a minimal generator set for the rotation group.
package orientation

import (
	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/geom"
)

// Enumerate returns the set of distinct in-box placements of template
// inside s: for every axis in {X,Y,Z}, rotation in [0,4), and shift
// (dx,dy,dz) ranging over [-(W-1),W-1] x [-(H-1),H-1] x [-(D-1),D-1],
// compute shift(rotate(template,axis,rotation),dx,dy,dz) and keep it if
// not already present. Iteration order is dx outermost among shifts,
// rotation before that, axis outermost - this order is what makes the
// solver's emitted-solution sequence deterministic.
//
// The orientation cap (config.Settings.Solver.OrientationCap) bounds
// pathological inputs; once that many distinct orientations have been
// found, enumeration stops early.
func Enumerate(s geom.Space, template geom.Bitboard) []geom.Bitboard {
	cap := config.Settings.Solver.OrientationCap
	if cap <= 0 {
		cap = 1024
	}

	seen := make(map[string]struct{}, cap)
	var out []geom.Bitboard

	add := func(b geom.Bitboard) bool {
		k := b.Key()
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
		out = append(out, b)
		return len(out) < cap
	}

	for _, axis := range []geom.Axis{geom.AxisX, geom.AxisY, geom.AxisZ} {
		for rotation := 0; rotation < 4; rotation++ {
			rotated := s.Rotate(template, axis, rotation)
			for dx := -(s.W - 1); dx < s.W; dx++ {
				for dy := -(s.H - 1); dy < s.H; dy++ {
					for dz := -(s.D - 1); dz < s.D; dz++ {
						placed := s.Shift(rotated, dx, dy, dz)
						if !add(placed) {
							return out
						}
					}
				}
			}
		}
	}
	return out
}
