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

// TestNeumaierSumMatchesPlainSum checks the compensated summation helper
// against a plain sum over inputs that include a large cancelling pair
// (1e10, -1e10); the two must agree to within 1e-6.
func TestNeumaierSumMatchesPlainSum(t *testing.T) {
	t.Parallel()
	values := []float64{0.1, 0.2, 0.3, -0.05, 1e10, -1e10, 0.0001}

	var ns neumaierSum
	plain := 0.0
	for _, v := range values {
		ns.add(v)
		plain += v
	}

	require.InDelta(t, plain, ns.result(), 1e-6)
}

// TestGeoLoopAreaMatchesCellArea checks that the general Cagnoli polygon
// area formula, applied to a single cell's own boundary loop, agrees with
// the teacher's dedicated per-cell triangle-fan CellAreaRads2 to a tight
// tolerance, grounding area.go's new general-purpose formula against the
// existing special-case one.
func TestGeoLoopAreaMatchesCellArea(t *testing.T) {
	t.Parallel()
	cell := hexOriginAtRes(t, 7)

	var gb GeoBoundary
	H3ToGeoBoundary(cell, &gb)

	loopArea := geoLoopAreaRads2(gb.verts[:gb.numVerts])
	cellArea := CellAreaRads2(cell)

	require.InDelta(t, cellArea, loopArea, cellArea*0.01)
}

// TestGeoPolygonAreaWithHoleIsSmaller checks that subtracting a hole
// reduces the reported polygon area, per spec.md §4.8's hole semantics.
func TestGeoPolygonAreaWithHoleIsSmaller(t *testing.T) {
	t.Parallel()
	center := hexOriginAtRes(t, 6)
	ring, code := gridRing(center, 1)
	require.Equal(t, E_SUCCESS, code)

	cells := append([]H3Index{center}, ring...)
	mpWithHole, code := CellsToMultiPolygon(ring)
	require.Equal(t, E_SUCCESS, code)
	require.Len(t, mpWithHole.Polygons[0].Holes, 1)

	disk, code := gridDisk(center, 1)
	require.Equal(t, E_SUCCESS, code)
	require.ElementsMatch(t, cells, disk)

	mpFilled, code := CellsToMultiPolygon(disk)
	require.Equal(t, E_SUCCESS, code)
	require.Empty(t, mpFilled.Polygons[0].Holes)

	areaWithHole := GeoPolygonAreaRads2(mpWithHole.Polygons[0])
	areaFilled := GeoPolygonAreaRads2(mpFilled.Polygons[0])
	require.Less(t, areaWithHole, areaFilled)
}
