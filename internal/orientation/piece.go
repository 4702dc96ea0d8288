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

package orientation

import (
	"fmt"
	"sync"

	"github.com/gopacker/polycube/internal/geom"
)

// Color is an RGB triple used only for rendering; the solver itself never
// inspects it.
type Color struct {
	R, G, B uint8
}

// Piece is a stable id, a display name and color, the template bitboard
// (the piece at its canonical origin), and its full orientation list -
// every bitboard in that list has the same popcount as the template.
type Piece struct {
	ID           int
	Name         string
	Color        Color
	Template     geom.Bitboard
	Orientations []geom.Bitboard
}

// Size returns the piece's cell count (the common popcount shared by
// every orientation).
func (p Piece) Size() int {
	return p.Template.PopCount()
}

// Build constructs a Piece from a template, enumerating its orientations
// inside s.
func Build(s geom.Space, id int, name string, color Color, template geom.Bitboard) Piece {
	return Piece{
		ID:           id,
		Name:         name,
		Color:        color,
		Template:     template,
		Orientations: Enumerate(s, template),
	}
}

// BuildAll constructs every Piece in templates concurrently: orientation
// enumeration for one piece touches nothing shared with any other piece's
// enumeration, so fanning the N independent calls out over goroutines is
// safe and does not touch the solver's single-threaded search invariant.
func BuildAll(s geom.Space, templates []Template) []Piece {
	pieces := make([]Piece, len(templates))
	var wg sync.WaitGroup
	wg.Add(len(templates))
	for i, tpl := range templates {
		i, tpl := i, tpl
		go func() {
			defer wg.Done()
			pieces[i] = Build(s, tpl.ID, tpl.Name, tpl.Color, tpl.Template)
		}()
	}
	wg.Wait()
	return pieces
}

// Template is the input to BuildAll: everything about a piece known
// before its orientations are enumerated.
type Template struct {
	ID       int
	Name     string
	Color    Color
	Template geom.Bitboard
}

// String renders a one-line summary, used by status dumps.
func (p Piece) String() string {
	return fmt.Sprintf("#%d %-12s size=%-2d orientations=%d", p.ID, p.Name, p.Size(), len(p.Orientations))
}
