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

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	first := Settings.Solver.OrientationCap
	defer func() { Settings.Solver.OrientationCap = first }()
	Settings.Solver.OrientationCap = -1 // would be clobbered by a second real Setup
	Setup()
	assert.Equal(t, -1, Settings.Solver.OrientationCap, "second Setup call must be a no-op")
	assert.Equal(t, 1024, first)
}

func TestDefaults(t *testing.T) {
	initialized = false
	Setup()
	assert.True(t, Settings.Solver.UseOrientationPruning)
	assert.True(t, Settings.Solver.UsePotentialFillPruning)
	assert.True(t, Settings.Solver.UseDivisibilityPruning)
	assert.False(t, Settings.Solver.StopAtFirstSolution)
	assert.Equal(t, 1024, Settings.Solver.OrientationCap)
}

func TestString(t *testing.T) {
	initialized = false
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "OrientationCap")
}
