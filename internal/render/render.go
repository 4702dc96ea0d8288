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

// Package render turns a solved problem into ASCII, the polycube
// counterpart of a chess engine's board-string dump: one grid per z
// layer, each cell showing either a piece's initial or "." if empty.
package render

import (
	"fmt"
	"strings"

	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/solver"
	"github.com/gopacker/polycube/internal/util"
)

// Solution renders sol as a stack of p.Space.D cross-section grids, one
// per z layer, each cell showing the placed piece's initial (falling
// back to its id mod 36 in base-36 once initials collide) or "." if
// still empty.
func Solution(p *problem.Problem, sol solver.Solution) string {
	sp := p.Space
	marks := make([]byte, sp.Size())
	for i := range marks {
		marks[i] = '.'
	}

	used := make(map[byte]bool)
	for _, pl := range sol.Placements {
		piece := p.Pieces[pl.PieceID]
		mark := glyph(piece.Name, pl.PieceID, used)
		used[mark] = true
		orientation := piece.Orientations[pl.OrientationIdx]
		for _, c := range sp.Cells(orientation) {
			marks[sp.BitIndex(c.X, c.Y, c.Z)] = mark
		}
	}

	var out strings.Builder
	for z := 0; z < sp.D; z++ {
		fmt.Fprintf(&out, "z=%d\n", z)
		for y := sp.H - 1; y >= 0; y-- {
			for x := 0; x < sp.W; x++ {
				out.WriteByte(marks[sp.BitIndex(x, y, z)])
				out.WriteByte(' ')
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// glyph picks a single printable byte to stand in for a piece: its
// name's first letter if that's still free, otherwise a base-36 digit
// derived from its id.
func glyph(name string, id int, used map[byte]bool) byte {
	for _, r := range name {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			b := byte(r)
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
			if !used[b] {
				return b
			}
			break
		}
	}
	const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return digits[id%len(digits)]
}

// Status renders a one-line progress summary, combining the solver's own
// Stats.String with which depth the search is currently at, out of
// totalPieces to place.
func Status(depth, totalPieces int, stats solver.Stats) string {
	pct := util.Percent(float64(depth), float64(totalPieces))
	return fmt.Sprintf("depth=%d/%d (%s) %s", depth, totalPieces, pct, stats.String())
}
