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

// Package problem loads and validates polycube packing problems: a
// Space plus a list of named, coloured, cell-set pieces. Validation
// happens once at load ("validate at the boundary"); once a Problem has
// been built, the solver trusts it completely.
package problem

import (
	"fmt"

	"github.com/gopacker/polycube/internal/geom"
	"github.com/gopacker/polycube/internal/orientation"
)

// ErrorKind classifies why a problem definition was rejected.
type ErrorKind int

const (
	// ErrTooManyCells: the sum of piece cell counts exceeds the space.
	ErrTooManyCells ErrorKind = iota
	// ErrCellOutOfBounds: a piece references a cell outside the box.
	ErrCellOutOfBounds
	// ErrDuplicateCell: a piece lists the same cell twice.
	ErrDuplicateCell
	// ErrEmptyPiece: a piece has no cells at all.
	ErrEmptyPiece
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTooManyCells:
		return "too many cells"
	case ErrCellOutOfBounds:
		return "cell out of bounds"
	case ErrDuplicateCell:
		return "duplicate cell"
	case ErrEmptyPiece:
		return "empty piece"
	default:
		return "unknown"
	}
}

// Error reports an invalid problem definition, detected at load time.
type Error struct {
	Kind   ErrorKind
	Piece  string
	Detail string
}

func (e *Error) Error() string {
	if e.Piece != "" {
		return fmt.Sprintf("problem: %s (piece %q): %s", e.Kind, e.Piece, e.Detail)
	}
	return fmt.Sprintf("problem: %s: %s", e.Kind, e.Detail)
}

// Def is the external, data-only shape of a problem: dimensions and a
// list of piece definitions by cell coordinate. This is the interface a
// loader (hard-coded catalog entry, text file, JSON document) produces;
// the core never parses a wire format itself.
type Def struct {
	W, H, D int
	Pieces  []PieceDef
}

// PieceDef names a piece and lists its cells at canonical placement.
type PieceDef struct {
	Name  string
	Color orientation.Color
	Cells []geom.Cell
}

// Problem is a validated, orientation-enumerated problem ready for the
// solver: a Space and the pieces placed in it, each already carrying its
// full orientation list.
type Problem struct {
	Space           geom.Space
	Pieces          []orientation.Piece
	CommonCellSize  int  // 0 if pieces differ in size (disables the divisibility pruner)
	SpaceWillBeFull bool // true when sum(piece sizes) == Space.Size()
}

// Load validates def and, if valid, builds the Problem (enumerating
// every piece's orientations). Detected at load: sum of piece cells
// exceeding the box, a cell outside the box, a duplicate cell within a
// piece, or an empty piece.
func Load(def Def) (*Problem, error) {
	space, err := geom.NewSpace(def.W, def.H, def.D)
	if err != nil {
		return nil, err
	}

	total := 0
	templates := make([]orientation.Template, 0, len(def.Pieces))
	commonSize := -1
	sameSize := true

	for id, pd := range def.Pieces {
		if len(pd.Cells) == 0 {
			return nil, &Error{Kind: ErrEmptyPiece, Piece: pd.Name, Detail: "piece has no cells"}
		}

		seen := make(map[geom.Cell]struct{}, len(pd.Cells))
		board := space.NewBitboard()
		for _, c := range pd.Cells {
			if !space.InBounds(c.X, c.Y, c.Z) {
				return nil, &Error{Kind: ErrCellOutOfBounds, Piece: pd.Name, Detail: fmt.Sprintf("cell (%d,%d,%d) outside %dx%dx%d space", c.X, c.Y, c.Z, space.W, space.H, space.D)}
			}
			if _, dup := seen[c]; dup {
				return nil, &Error{Kind: ErrDuplicateCell, Piece: pd.Name, Detail: fmt.Sprintf("cell (%d,%d,%d) listed twice", c.X, c.Y, c.Z)}
			}
			seen[c] = struct{}{}
			one := space.MustL2B(c.X, c.Y, c.Z)
			board = board.Union(one)
		}

		total += len(pd.Cells)
		if commonSize == -1 {
			commonSize = len(pd.Cells)
		} else if commonSize != len(pd.Cells) {
			sameSize = false
		}

		templates = append(templates, orientation.Template{
			ID:       id,
			Name:     pd.Name,
			Color:    pd.Color,
			Template: board,
		})
	}

	if total > space.Size() {
		return nil, &Error{Kind: ErrTooManyCells, Detail: fmt.Sprintf("pieces sum to %d cells, space holds %d", total, space.Size())}
	}

	pieces := orientation.BuildAll(space, templates)

	p := &Problem{
		Space:           space,
		Pieces:          pieces,
		SpaceWillBeFull: total == space.Size(),
	}
	if sameSize {
		p.CommonCellSize = commonSize
	}
	return p, nil
}
