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

// Package geom is the bit-packed geometric core: mapping cells to bit
// positions inside a W x H x D box, set operations over those bits, and
// the rigid rotate/shift transforms pieces are placed with. Nothing in
// this package knows about pieces, problems, or search - it is pure
// geometry over a fixed box.
package geom

import "fmt"

// Cell is an integer triple (x,y,z) inside a Space.
type Cell struct {
	X, Y, Z int
}

// Space is a rectangular W x H x D box. Cells are encoded as the bit
// index z + D*y + D*H*x, matching a row-major z-fastest layout.
type Space struct {
	W, H, D int
}

// NewSpace validates and returns a Space. All three dimensions must be
// positive.
func NewSpace(w, h, d int) (Space, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return Space{}, fmt.Errorf("geom: invalid space dimensions %dx%dx%d", w, h, d)
	}
	return Space{W: w, H: h, D: d}, nil
}

// Size returns the total number of cells W*H*D.
func (s Space) Size() int {
	return s.W * s.H * s.D
}

// Cube reports whether the space is a cube (required by Rotate, which
// assumes W == H == D per the rigid-transform remap formulas).
func (s Space) Cube() bool {
	return s.W == s.H && s.H == s.D
}

// InBounds reports whether (x,y,z) is a valid cell of the space.
func (s Space) InBounds(x, y, z int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H && z >= 0 && z < s.D
}

// BitIndex returns the bit index of cell (x,y,z). The caller must check
// InBounds first; an out-of-range index is returned uninterpreted.
func (s Space) BitIndex(x, y, z int) int {
	return z + s.D*y + s.D*s.H*x
}

// Cell decodes a bit index back into the (x,y,z) triple it was encoded
// from by BitIndex.
func (s Space) Cell(bit int) Cell {
	x := bit / (s.D * s.H)
	rem := bit % (s.D * s.H)
	y := rem / s.D
	z := rem % s.D
	return Cell{X: x, Y: y, Z: z}
}

// wordCount is the number of uint64 words needed to hold Size() bits.
func (s Space) wordCount() int {
	n := s.Size()
	return (n + 63) / 64
}

// FullMask returns the bitboard with every in-box cell set.
func (s Space) FullMask() Bitboard {
	b := s.NewBitboard()
	n := s.Size()
	full := n / 64
	for i := 0; i < full; i++ {
		b.words[i] = ^uint64(0)
	}
	if rem := n % 64; rem != 0 {
		b.words[full] = (uint64(1) << uint(rem)) - 1
	}
	return b
}
