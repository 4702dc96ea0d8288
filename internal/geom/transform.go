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

package geom

// Axis names a rotation axis for Rotate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String implements fmt.Stringer for Axis, mainly for log lines.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Rotate applies k quarter-turns (0 <= k < 4) of b about axis, per the
// box's side length S (the remap formulas assume a cube, W == H == D).
// If any rotated cell would leave the box - or the space isn't a cube -
// Rotate returns b unchanged. This silent no-op contract (rather than an
// error) lets the orientation enumerator treat a failed rotation exactly
// like "not a new placement": the dedup step discards it either way.
func (s Space) Rotate(b Bitboard, axis Axis, k int) Bitboard {
	if !s.Cube() {
		return b
	}
	k = k % 4
	if k < 0 {
		k += 4
	}
	out := b
	for i := 0; i < k; i++ {
		rotated, ok := s.rotateOnce(out, axis)
		if !ok {
			return b
		}
		out = rotated
	}
	return out
}

// rotateOnce applies a single quarter-turn about axis. ok is false if any
// source cell's remapped coordinate falls outside the box.
func (s Space) rotateOnce(b Bitboard, axis Axis) (Bitboard, bool) {
	side := s.W
	out := s.NewBitboard()
	for _, c := range s.Cells(b) {
		var nx, ny, nz int
		switch axis {
		case AxisX:
			nx, ny, nz = c.X, c.Z, side-1-c.Y
		case AxisY:
			nx, ny, nz = c.Z, c.Y, side-1-c.X
		case AxisZ:
			nx, ny, nz = c.Y, side-1-c.X, c.Z
		default:
			return b, false
		}
		if !s.InBounds(nx, ny, nz) {
			return b, false
		}
		bit := s.BitIndex(nx, ny, nz)
		out.words[bit/64] |= uint64(1) << uint(bit%64)
	}
	return out, true
}

// Shift translates every cell of b by (dx,dy,dz). If any resulting
// coordinate is negative or falls outside the box on any axis, Shift
// returns b unchanged - again a silent no-op the enumerator's dedup
// filters out rather than a partial translation.
func (s Space) Shift(b Bitboard, dx, dy, dz int) Bitboard {
	out := s.NewBitboard()
	for _, c := range s.Cells(b) {
		nx, ny, nz := c.X+dx, c.Y+dy, c.Z+dz
		if !s.InBounds(nx, ny, nz) {
			return b
		}
		bit := s.BitIndex(nx, ny, nz)
		out.words[bit/64] |= uint64(1) << uint(bit%64)
	}
	return out
}
