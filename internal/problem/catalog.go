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

package problem

import (
	"fmt"

	"github.com/gopacker/polycube/internal/geom"
	"github.com/gopacker/polycube/internal/orientation"
)

func cell(x, y, z int) geom.Cell { return geom.Cell{X: x, Y: y, Z: z} }

// LineCube is the simplest possible scenario: a 3x3x3 box with a single
// 3-cell line piece. Solvable; mostly useful for exercising the happy
// path with almost no search.
func LineCube() Def {
	return Def{
		W: 3, H: 3, D: 3,
		Pieces: []PieceDef{
			{Name: "line", Color: orientation.Color{R: 200, G: 200, B: 200}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0)}},
		},
	}
}

// SixPieceCube is "Problem 4" from the source: a 3x3x3 box with six
// pentomino/tetromino-family pieces summing to 27 cells (a full box).
func SixPieceCube() Def {
	return Def{
		W: 3, H: 3, D: 3,
		Pieces: []PieceDef{
			{Name: "p1", Color: orientation.Color{R: 255, G: 0, B: 0}, Cells: []geom.Cell{cell(0, 0, 0), cell(0, 1, 0), cell(1, 1, 0), cell(2, 1, 0)}},
			{Name: "p2", Color: orientation.Color{R: 0, G: 128, B: 128}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(2, 0, 0)}},
			{Name: "p3", Color: orientation.Color{R: 0, G: 100, B: 0}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(1, 1, 0), cell(2, 0, 1)}},
			{Name: "p4", Color: orientation.Color{R: 154, G: 255, B: 154}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(0, 1, 0), cell(0, 1, 1)}},
			{Name: "p5", Color: orientation.Color{R: 255, G: 180, B: 0}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(1, 1, 0), cell(1, 1, 1)}},
			{Name: "p6", Color: orientation.Color{R: 0, G: 20, B: 205}, Cells: []geom.Cell{cell(0, 0, 0), cell(0, 1, 0), cell(0, 1, 1), cell(1, 1, 0), cell(1, 2, 0)}},
		},
	}
}

// UnsolvableCube is a 2x2x2 box with two popcount-4 pieces that sum to a
// full box but cannot tile it: a flat square is planar under every
// rotation, while the twisted tetracube never is (rotation preserves
// which coordinates vary), so neither can ever occupy the other's
// complement.
func UnsolvableCube() Def {
	return Def{
		W: 2, H: 2, D: 2,
		Pieces: []PieceDef{
			{Name: "flat-square", Color: orientation.Color{R: 100, G: 100, B: 100}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(0, 1, 0), cell(1, 1, 0)}},
			{Name: "twisted", Color: orientation.Color{R: 50, G: 50, B: 50}, Cells: []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(1, 1, 1)}},
		},
	}
}

// RealProblem is the canonical target: a 5x5x5 cube packed with the 25
// named, coloured pentominoid pieces from the original puzzle.
func RealProblem() Def {
	type spec struct {
		name  string
		color orientation.Color
		cells []geom.Cell
	}
	specs := []spec{
		{"Yellow", orientation.Color{R: 238, G: 238, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(2, 1, 0), cell(3, 1, 0)}},
		{"Yellow U", orientation.Color{R: 245, G: 238, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(0, 1, 0), cell(0, 2, 0), cell(1, 2, 0)}},
		{"Light Orange Symmetric L", orientation.Color{R: 255, G: 165, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(0, 1, 0), cell(0, 2, 0)}},
		{"Light Orange Bar", orientation.Color{R: 255, G: 180, B: 0}, []geom.Cell{cell(0, 0, 0), cell(0, 0, 1), cell(0, 0, 2), cell(0, 0, 3), cell(0, 0, 4)}},
		{"Dark Orange Y", orientation.Color{R: 238, G: 154, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(1, 0, 1), cell(2, 0, 1)}},
		{"Dark Orange Short Hook", orientation.Color{R: 238, G: 145, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(2, 1, 0), cell(2, 1, 1)}},
		{"Dark Orange Long Hook", orientation.Color{R: 238, G: 154, B: 0}, []geom.Cell{cell(0, 0, 0), cell(0, 0, 1), cell(1, 0, 0), cell(2, 0, 0), cell(2, 1, 0)}},
		{"Red T", orientation.Color{R: 255, G: 0, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(1, 1, 0), cell(1, 2, 0)}},
		{"Red W", orientation.Color{R: 255, G: 0, B: 20}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(2, 1, 0), cell(2, 2, 0)}},
		{"Dark Red Corner Hook", orientation.Color{R: 200, G: 0, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(2, 1, 0), cell(2, 0, 1)}},
		{"Dark Red Long Hook", orientation.Color{R: 200, G: 20, B: 0}, []geom.Cell{cell(0, 0, 0), cell(0, 1, 0), cell(1, 0, 0), cell(2, 0, 0), cell(2, 0, 1)}},
		{"Purple L", orientation.Color{R: 142, G: 56, B: 142}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(3, 0, 0), cell(3, 1, 0)}},
		{"Purple Cross", orientation.Color{R: 142, G: 40, B: 142}, []geom.Cell{cell(0, 1, 0), cell(1, 1, 0), cell(2, 1, 0), cell(1, 0, 0), cell(1, 2, 0)}},
		{"Blue Two Towers", orientation.Color{R: 0, G: 0, B: 205}, []geom.Cell{cell(0, 0, 0), cell(0, 0, 1), cell(1, 0, 0), cell(1, 1, 0), cell(1, 1, 1)}},
		{"Blue Middle Hook", orientation.Color{R: 0, G: 20, B: 205}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(1, 1, 0), cell(2, 0, 1)}},
		{"Teal Foam Finger", orientation.Color{R: 0, G: 128, B: 128}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(2, 0, 0), cell(2, 1, 0)}},
		{"Teal Z", orientation.Color{R: 20, G: 128, B: 128}, []geom.Cell{cell(0, 0, 0), cell(0, 1, 0), cell(1, 1, 0), cell(2, 1, 0), cell(2, 2, 0)}},
		{"Yellow-Green Left", orientation.Color{R: 173, G: 255, B: 47}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 0, 1), cell(2, 0, 1), cell(2, 1, 1)}},
		{"Yellow-Green Right", orientation.Color{R: 173, G: 234, B: 47}, []geom.Cell{cell(0, 0, 0), cell(0, 0, 1), cell(1, 0, 0), cell(1, 1, 0), cell(2, 1, 0)}},
		{"Light Green Bent Cross", orientation.Color{R: 154, G: 255, B: 154}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(1, 0, 1), cell(2, 0, 0)}},
		{"Light Green Side Hook", orientation.Color{R: 170, G: 255, B: 154}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(1, 1, 0), cell(2, 0, 1)}},
		{"Olive Green Rifle", orientation.Color{R: 162, G: 205, B: 90}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(2, 0, 0), cell(3, 0, 0), cell(2, 1, 0)}},
		{"Olive Green Y", orientation.Color{R: 150, G: 205, B: 90}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 1, 0), cell(1, 2, 0), cell(2, 1, 0)}},
		{"Dark Green Tower", orientation.Color{R: 0, G: 100, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(0, 1, 0), cell(1, 1, 0), cell(1, 1, 1)}},
		{"Dark Green Y", orientation.Color{R: 20, G: 100, B: 0}, []geom.Cell{cell(0, 0, 0), cell(1, 0, 0), cell(1, 0, 1), cell(1, 1, 0), cell(2, 1, 0)}},
	}

	pieces := make([]PieceDef, len(specs))
	for i, sp := range specs {
		pieces[i] = PieceDef{Name: fmt.Sprintf("%02d %s", i+1, sp.name), Color: sp.color, Cells: sp.cells}
	}
	return Def{W: 5, H: 5, D: 5, Pieces: pieces}
}

// ByName resolves a catalog entry by its CLI-facing name.
func ByName(name string) (Def, error) {
	switch name {
	case "line":
		return LineCube(), nil
	case "six":
		return SixPieceCube(), nil
	case "unsolvable":
		return UnsolvableCube(), nil
	case "real":
		return RealProblem(), nil
	default:
		return Def{}, fmt.Errorf("problem: unknown catalog entry %q", name)
	}
}
