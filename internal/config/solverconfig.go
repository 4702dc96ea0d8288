/*
 * polycube - 3D polycube packing solver
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// solverConfiguration is a data structure to hold the configuration of an
// instance of a solver run.
type solverConfiguration struct {
	// stop the backtracking search as soon as one solution has been found
	// instead of enumerating all of them.
	StopAtFirstSolution bool

	// pruning: reject a placement if any remaining piece has no orientation
	// left that fits in the empty space.
	UseOrientationPruning bool

	// pruning: reject a placement if some empty cell is not covered by any
	// remaining piece's surviving orientations (SPACE_WILL_BE_FULL check;
	// only applied when the pieces exactly fill the space).
	UsePotentialFillPruning bool

	// pruning: reject a placement if a flood-filled empty region's size is
	// not a multiple of the common piece cell count; not applied when the
	// pieces differ in size.
	UseDivisibilityPruning bool

	// cap on the number of distinct orientations kept per piece; the
	// enumerator stops generating once this many unique orientations have
	// been found for a piece.
	OrientationCap int

	// how often (in nodes visited) the solver polls the print_status flag.
	StatusPollInterval int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Solver.StopAtFirstSolution = false
	Settings.Solver.UseOrientationPruning = true
	Settings.Solver.UsePotentialFillPruning = true
	Settings.Solver.UseDivisibilityPruning = true
	Settings.Solver.OrientationCap = 1024
	Settings.Solver.StatusPollInterval = 10000
}

// setupSolver is a no-op: solver defaults are set in init() and remain in
// place for any value the config file does not provide.
func setupSolver() {
}
