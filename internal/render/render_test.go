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

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopacker/polycube/internal/config"
	"github.com/gopacker/polycube/internal/problem"
	"github.com/gopacker/polycube/internal/solver"
)

func TestSolutionRendersOneGridPerLayer(t *testing.T) {
	config.Setup()
	p, err := problem.Load(problem.LineCube())
	require.NoError(t, err)

	result := solver.New(p, nil).Run()
	require.NotEmpty(t, result.Solutions)

	out := Solution(p, result.Solutions[0])
	assert.Equal(t, p.Space.D, strings.Count(out, "z="))
	assert.Contains(t, out, "L")
}

func TestStatusIncludesDepthAndStats(t *testing.T) {
	out := Status(3, 10, solver.Stats{NodesVisited: 7})
	assert.Contains(t, out, "depth=3/10")
	assert.Contains(t, out, "nodes=7")
}
