// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBaseCellCount checks the structural invariant spec.md states
// regardless of which concrete table backs it: 122 base cells, exactly 12
// of which are pentagons.
func TestBaseCellCount(t *testing.T) {
	t.Parallel()
	require.Equal(t, 122, NUM_BASE_CELLS)

	count := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	require.Equal(t, 12, count)

	pentagons := PentagonBaseCells()
	require.Len(t, pentagons, 12)
	for _, p := range pentagons {
		require.True(t, _isBaseCellPentagon(p))
	}
}

// TestBaseCellNeighborRoundTrip checks that for every non-deleted neighbor
// direction of a base cell, the reverse lookup recovers a direction from
// the neighbor back toward the origin base cell.
func TestBaseCellNeighborRoundTrip(t *testing.T) {
	t.Parallel()
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
			n := _getBaseCellNeighbor(bc, d)
			if n == INVALID_BASE_CELL || n == bc {
				continue
			}
			back := _getBaseCellDirection(n, bc)
			require.NotEqual(t, INVALID_DIGIT, back,
				"base cell %d -> %d via %d has no reverse direction", bc, n, d)
		}
	}
}

// TestBaseCellHomeFaceValid checks every base cell has a home face in
// range, per spec.md's FaceIJK{face in [0,19], ...} data model.
func TestBaseCellHomeFaceValid(t *testing.T) {
	t.Parallel()
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		face := baseCellData[bc].homeFijk.face
		require.GreaterOrEqual(t, face, 0)
		require.Less(t, face, NUM_ICOSA_FACES)
	}
}

// firstHexBaseCell returns the lowest-numbered non-pentagon base cell, used
// by other tests that need a predictable hexagon to work with.
func firstHexBaseCell(t *testing.T) int {
	t.Helper()
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if !_isBaseCellPentagon(bc) {
			return bc
		}
	}
	t.Fatal("no non-pentagon base cell found")
	return -1
}

// firstPentagonBaseCell returns the lowest-numbered pentagon base cell.
func firstPentagonBaseCell(t *testing.T) int {
	t.Helper()
	pentagons := PentagonBaseCells()
	return pentagons[0]
}
