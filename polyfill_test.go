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

// squareAround builds a small GeoPolygon around a center point, used as a
// minimal polyfill fixture that is guaranteed to contain that point.
func squareAround(center GeoCoord, halfSide float64) GeoPolygon {
	return GeoPolygon{
		Outer: GeoLoop{
			Verts: []GeoCoord{
				{lat: center.lat - halfSide, lon: center.lon - halfSide},
				{lat: center.lat - halfSide, lon: center.lon + halfSide},
				{lat: center.lat + halfSide, lon: center.lon + halfSide},
				{lat: center.lat + halfSide, lon: center.lon - halfSide},
			},
		},
	}
}

// TestPolyfillCenterModeContainsOrigin checks that a small square polygon
// around a cell's own center yields that cell under CENTER containment
// mode, and that the iterator terminates (reaches EXHAUSTED).
func TestPolyfillCenterModeContainsOrigin(t *testing.T) {
	t.Parallel()
	const res = 6
	cell := hexOriginAtRes(t, res)

	var center GeoCoord
	H3ToGeo(cell, &center)

	poly := squareAround(center, 0.0005)

	it := IterCellsPolygonCompact(poly, res, ContainmentCenter)
	found := false
	count := 0
	for it.Next() {
		count++
		if it.Cell() == cell {
			found = true
		}
		require.Less(t, count, 10000, "polyfill iterator did not terminate promptly")
	}
	require.True(t, it.Done())
	require.True(t, found, "expected cell %s among polyfill results", cell)
}

// TestPolyfillEmptyPolygonIsImmediatelyExhausted checks the INIT ->
// EXHAUSTED transition spec.md §4.11 describes for a degenerate input.
func TestPolyfillEmptyPolygonIsImmediatelyExhausted(t *testing.T) {
	t.Parallel()
	it := IterCellsPolygonCompact(GeoPolygon{}, 5, ContainmentCenter)
	require.False(t, it.Next())
	require.True(t, it.Done())
}

// TestPolyfillFullModeStricterThanOverlapping checks that FULL containment
// never emits more cells than OVERLAPPING for the same polygon, consistent
// with FULL being the strictest mode in spec.md §4.9.
func TestPolyfillFullModeStricterThanOverlapping(t *testing.T) {
	t.Parallel()
	const res = 6
	cell := hexOriginAtRes(t, res)

	var center GeoCoord
	H3ToGeo(cell, &center)
	poly := squareAround(center, 0.01)

	overlapping := collectCells(t, IterCellsPolygonCompact(poly, res, ContainmentOverlapping))
	full := collectCells(t, IterCellsPolygonCompact(poly, res, ContainmentFull))

	require.LessOrEqual(t, len(full), len(overlapping))
	for _, c := range full {
		require.Contains(t, overlapping, c)
	}
}

func collectCells(t *testing.T, it *CellPolygonIterator) []H3Index {
	t.Helper()
	var out []H3Index
	count := 0
	for it.Next() {
		out = append(out, it.Cell())
		count++
		require.Less(t, count, 20000, "polyfill iterator did not terminate promptly")
	}
	return out
}
