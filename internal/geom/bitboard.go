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

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of cells of some Space, stored as a slice of 64-bit
// words. Unlike a chess engine's single fixed uint64, a 5x5x5 box alone
// needs 125 bits, so the word count is sized to the owning Space rather
// than hard-coded.
type Bitboard struct {
	words []uint64
}

// NewBitboard returns the empty bitboard sized for s.
func (s Space) NewBitboard() Bitboard {
	return Bitboard{words: make([]uint64, s.wordCount())}
}

// L2B ("location to bitboard") returns the singleton bitboard for cell
// (x,y,z). It fails - returning the zero Bitboard and a non-nil error -
// when any coordinate is out of range, per the bounds check the cell
// encoding requires.
func (s Space) L2B(x, y, z int) (Bitboard, error) {
	if !s.InBounds(x, y, z) {
		return Bitboard{}, fmt.Errorf("geom: cell (%d,%d,%d) out of bounds for %dx%dx%d space", x, y, z, s.W, s.H, s.D)
	}
	b := s.NewBitboard()
	bit := s.BitIndex(x, y, z)
	b.words[bit/64] |= uint64(1) << uint(bit%64)
	return b, nil
}

// MustL2B is L2B for call sites that already know the cell is in bounds,
// such as piece template literals defined against a known space. It
// panics if it isn't.
func (s Space) MustL2B(x, y, z int) Bitboard {
	b, err := s.L2B(x, y, z)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone returns an independent copy of b.
func (b Bitboard) Clone() Bitboard {
	out := Bitboard{words: make([]uint64, len(b.words))}
	copy(out.words, b.words)
	return out
}

// Test reports whether bit index i is set.
func (b Bitboard) Test(i int) bool {
	w := i / 64
	if w < 0 || w >= len(b.words) {
		return false
	}
	return b.words[w]&(uint64(1)<<uint(i%64)) != 0
}

// Set mutates b in place, setting bit index i.
func (b Bitboard) Set(i int) {
	b.words[i/64] |= uint64(1) << uint(i%64)
}

// Union returns b | other (b and other must share the same word count).
func (b Bitboard) Union(other Bitboard) Bitboard {
	out := Bitboard{words: make([]uint64, len(b.words))}
	for i := range b.words {
		out.words[i] = b.words[i] | other.words[i]
	}
	return out
}

// Intersect returns b & other.
func (b Bitboard) Intersect(other Bitboard) Bitboard {
	out := Bitboard{words: make([]uint64, len(b.words))}
	for i := range b.words {
		out.words[i] = b.words[i] & other.words[i]
	}
	return out
}

// AndNot returns b &^ other, i.e. b with other's bits cleared.
func (b Bitboard) AndNot(other Bitboard) Bitboard {
	out := Bitboard{words: make([]uint64, len(b.words))}
	for i := range b.words {
		out.words[i] = b.words[i] &^ other.words[i]
	}
	return out
}

// Complement returns full &^ b - the cells of full not set in b.
func (b Bitboard) Complement(full Bitboard) Bitboard {
	return full.AndNot(b)
}

// Disjoint reports whether b and other share no set bit.
func (b Bitboard) Disjoint(other Bitboard) bool {
	for i := range b.words {
		if b.words[i]&other.words[i] != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether no bit is set.
func (b Bitboard) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether b and other have the same set bits.
func (b Bitboard) Equal(other Bitboard) bool {
	if len(b.words) != len(other.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Key returns a value suitable for use as a map key, since a slice-backed
// Bitboard is not itself comparable. Used by the orientation enumerator's
// dedup set.
func (b Bitboard) Key() string {
	buf := make([]byte, 8*len(b.words))
	for i, w := range b.words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

// Cells returns every set bit decoded back into Cells, in ascending bit
// order. Intended for rendering and tests, not hot paths.
func (s Space) Cells(b Bitboard) []Cell {
	var cells []Cell
	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			for z := 0; z < s.D; z++ {
				if b.Test(s.BitIndex(x, y, z)) {
					cells = append(cells, Cell{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return cells
}

// StrBoard renders b as a stack of D WxH cross-section grids, one per z
// layer, suitable for diff-style inspection. It is purely observational
// and never mutates b.
func (s Space) StrBoard(b Bitboard) string {
	var out strings.Builder
	for z := 0; z < s.D; z++ {
		fmt.Fprintf(&out, "z=%d\n", z)
		for y := s.H - 1; y >= 0; y-- {
			for x := 0; x < s.W; x++ {
				if b.Test(s.BitIndex(x, y, z)) {
					out.WriteString("X ")
				} else {
					out.WriteString(". ")
				}
			}
			out.WriteString("\n")
		}
	}
	return out.String()
}
