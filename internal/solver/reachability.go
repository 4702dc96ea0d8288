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

import "github.com/gopacker/polycube/internal/geom"

// emptySpacesAreFactors partitions the complement of fill into connected
// components under 6-neighbour face adjacency and reports whether every
// component's cell count is a multiple of k. This is the divisibility
// pruner: the single most important cut for the common case where all
// pieces share a cell count, since a hole whose size isn't a multiple of
// k can never be exactly covered by whole pieces.
func emptySpacesAreFactors(s geom.Space, fill geom.Bitboard, k int) bool {
	if k <= 0 {
		return true
	}

	visited := s.NewBitboard()
	stack := make([]geom.Cell, 0, s.Size())

	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			for z := 0; z < s.D; z++ {
				bit := s.BitIndex(x, y, z)
				if fill.Test(bit) || visited.Test(bit) {
					continue
				}

				count := 0
				stack = append(stack[:0], geom.Cell{X: x, Y: y, Z: z})
				visited.Set(bit)

				for len(stack) > 0 {
					c := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					count++

					for _, n := range neighbours(s, c) {
						nb := s.BitIndex(n.X, n.Y, n.Z)
						if fill.Test(nb) || visited.Test(nb) {
							continue
						}
						visited.Set(nb)
						stack = append(stack, n)
					}
				}

				if count%k != 0 {
					return false
				}
			}
		}
	}
	return true
}

// neighbours returns c's in-box face-adjacent cells.
func neighbours(s geom.Space, c geom.Cell) []geom.Cell {
	out := make([]geom.Cell, 0, 6)
	deltas := [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}
	for _, d := range deltas {
		nx, ny, nz := c.X+d[0], c.Y+d[1], c.Z+d[2]
		if s.InBounds(nx, ny, nz) {
			out = append(out, geom.Cell{X: nx, Y: ny, Z: nz})
		}
	}
	return out
}
