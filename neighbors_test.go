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

// hexOriginAtRes returns a non-pentagon cell at res with a few levels of
// resolution below it, so a k=2 grid disk stays interior to a single base
// cell and the formulas in spec.md §8 apply exactly.
func hexOriginAtRes(t *testing.T, res int) H3Index {
	t.Helper()
	return _setH3Index(res, firstHexBaseCell(t), J_AXES_DIGIT)
}

// TestGridDiskSizeHexagon checks the 1 + 3*k*(k+1) count spec.md §4.4 states
// for a disk that does not reach a pentagon.
func TestGridDiskSizeHexagon(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	for k := 0; k <= 2; k++ {
		cells, code := gridDisk(origin, k)
		require.Equal(t, E_SUCCESS, code)
		require.Len(t, cells, MaxGridDiskSize(k))
	}
}

// TestGridRingSizeHexagon checks the 6*k count (1 for k=0).
func TestGridRingSizeHexagon(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	for k := 0; k <= 2; k++ {
		cells, code := gridRing(origin, k)
		require.Equal(t, E_SUCCESS, code)
		require.Len(t, cells, MaxGridRingSize(k))
	}
}

// TestGridDiskIsUnionOfRings checks spec.md §8's "Disk <-> ring" property:
// the union of gridRing(o, 0..k) equals gridDisk(o, k), and the rings are
// disjoint across distances.
func TestGridDiskIsUnionOfRings(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	const k = 2

	disk, code := gridDisk(origin, k)
	require.Equal(t, E_SUCCESS, code)

	seen := make(map[H3Index]bool, len(disk))
	var union []H3Index
	for d := 0; d <= k; d++ {
		ring, code := gridRing(origin, d)
		require.Equal(t, E_SUCCESS, code)
		for _, c := range ring {
			require.False(t, seen[c], "cell %s appeared in more than one ring", c)
			seen[c] = true
			union = append(union, c)
		}
	}

	require.ElementsMatch(t, disk, union)
}

// TestAreNeighborCellsSymmetric checks spec.md §8's neighbor-symmetry
// property.
func TestAreNeighborCellsSymmetric(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	ring, code := gridRing(origin, 1)
	require.Equal(t, E_SUCCESS, code)
	require.NotEmpty(t, ring)

	for _, n := range ring {
		ab, code := areNeighborCells(origin, n)
		require.Equal(t, E_SUCCESS, code)
		require.True(t, ab)

		ba, code := areNeighborCells(n, origin)
		require.Equal(t, E_SUCCESS, code)
		require.True(t, ba)
	}
}

// TestGridDistanceSymmetric checks spec.md §8's distance-symmetry property
// for cells within a single base cell's interior.
func TestGridDistanceSymmetric(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	ring, code := gridRing(origin, 2)
	require.Equal(t, E_SUCCESS, code)
	require.NotEmpty(t, ring)

	for _, n := range ring {
		dab, codeAB := gridDistance(origin, n)
		dba, codeBA := gridDistance(n, origin)
		if codeAB != E_SUCCESS || codeBA != E_SUCCESS {
			continue
		}
		require.Equal(t, dab, dba)
	}
}

// TestAreNeighborCellsResMismatch checks the E_RES_MISMATCH failure mode.
func TestAreNeighborCellsResMismatch(t *testing.T) {
	t.Parallel()
	a := hexOriginAtRes(t, 4)
	b := a.ToParent(2)
	_, code := areNeighborCells(a, b)
	require.Equal(t, E_RES_MISMATCH, code)
}

// TestGridDiskPentagonMissingDirection checks the pentagon disk-of-1
// scenario from spec.md §8 item 2: a pentagon has exactly 6 cells in its
// k=1 disk (itself plus 5 neighbors, since the 6th direction is deleted),
// not 7.
func TestGridDiskPentagonMissingDirection(t *testing.T) {
	t.Parallel()
	pentagon := _setH3Index(4, firstPentagonBaseCell(t), CENTER_DIGIT)
	require.True(t, H3IsPentagon(pentagon))

	cells, code := gridDisk(pentagon, 1)
	require.Equal(t, E_SUCCESS, code)
	require.Len(t, cells, 6)
}
