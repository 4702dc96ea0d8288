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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2BBoundsCheck(t *testing.T) {
	s, err := NewSpace(3, 3, 3)
	require.NoError(t, err)

	tests := []struct {
		x, y, z int
		wantErr bool
	}{
		{0, 0, 0, false},
		{2, 2, 2, false},
		{3, 0, 0, true},
		{0, -1, 0, true},
		{0, 0, 3, true},
	}
	for _, tt := range tests {
		_, err := s.L2B(tt.x, tt.y, tt.z)
		if tt.wantErr {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestBitIndexRoundTrip(t *testing.T) {
	s, err := NewSpace(5, 5, 5)
	require.NoError(t, err)
	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			for z := 0; z < s.D; z++ {
				bit := s.BitIndex(x, y, z)
				c := s.Cell(bit)
				assert.Equal(t, Cell{X: x, Y: y, Z: z}, c)
			}
		}
	}
}

func TestFullMaskPopCount(t *testing.T) {
	s, err := NewSpace(5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 125, s.FullMask().PopCount())

	s2, err := NewSpace(3, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 27, s2.FullMask().PopCount())
}

func TestUnionIntersectAndNot(t *testing.T) {
	s, _ := NewSpace(3, 3, 3)
	a, _ := s.L2B(0, 0, 0)
	b, _ := s.L2B(1, 0, 0)

	u := a.Union(b)
	assert.Equal(t, 2, u.PopCount())
	assert.True(t, u.Test(s.BitIndex(0, 0, 0)))
	assert.True(t, u.Test(s.BitIndex(1, 0, 0)))

	i := u.Intersect(a)
	assert.True(t, i.Equal(a))

	diff := u.AndNot(a)
	assert.True(t, diff.Equal(b))
}

func TestDisjointAndZero(t *testing.T) {
	s, _ := NewSpace(3, 3, 3)
	a, _ := s.L2B(0, 0, 0)
	b, _ := s.L2B(1, 0, 0)
	assert.True(t, a.Disjoint(b))
	assert.False(t, a.Disjoint(a))

	empty := s.NewBitboard()
	assert.True(t, empty.IsZero())
	assert.False(t, a.IsZero())
}

func TestKeyDistinguishesBitboards(t *testing.T) {
	s, _ := NewSpace(5, 5, 5) // forces > 1 word
	a, _ := s.L2B(0, 0, 0)
	b, _ := s.L2B(4, 4, 4)
	assert.NotEqual(t, a.Key(), b.Key())

	c := a.Clone()
	assert.Equal(t, a.Key(), c.Key())
}

func TestCellsDecodesSetBits(t *testing.T) {
	s, _ := NewSpace(3, 3, 3)
	a, _ := s.L2B(0, 0, 0)
	b, _ := s.L2B(2, 1, 0)
	u := a.Union(b)

	cells := s.Cells(u)
	assert.ElementsMatch(t, []Cell{{0, 0, 0}, {2, 1, 0}}, cells)
}
