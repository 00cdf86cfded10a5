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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLatLngToCellRoundTrip exercises spec.md §8's Round trip 1
// (latLngToCell(cellToLatLng(c), r) == c) through the actual gnomonic
// projection, not a hand-constructed index: it takes a cell's own center,
// feeds it back through LatLngToCell, and requires the same cell comes
// back out, at several resolutions and starting cells.
func TestLatLngToCellRoundTrip(t *testing.T) {
	t.Parallel()
	for _, res := range []int{0, 1, 3, 6, 9} {
		cell := hexOriginAtRes(t, res)

		var center GeoCoord
		H3ToGeo(cell, &center)

		got, code := LatLngToCell(&center, res)
		require.Equal(t, E_SUCCESS, code)
		require.Equal(t, cell, got, "round trip failed at res %d", res)
	}
}

// TestLatLngToCellRejectsNonFinite checks that LatLngToCell reports
// E_LATLNG_DOMAIN for infinite and NaN coordinates instead of silently
// succeeding or failing on the wrong inputs.
func TestLatLngToCellRejectsNonFinite(t *testing.T) {
	t.Parallel()
	bad := []GeoCoord{
		{lat: math.Inf(1), lon: 0},
		{lat: 0, lon: math.Inf(-1)},
		{lat: math.NaN(), lon: 0},
		{lat: 0, lon: math.NaN()},
	}
	for _, g := range bad {
		cell, code := LatLngToCell(&g, 5)
		require.Equal(t, H3_NULL, cell)
		require.Equal(t, E_LATLNG_DOMAIN, code)
	}
}

// TestLatLngToCellRejectsBadResolution checks the E_RES_DOMAIN failure for
// a resolution outside [0, 15], per spec.md §4.2.
func TestLatLngToCellRejectsBadResolution(t *testing.T) {
	t.Parallel()
	g := GeoCoord{lat: 0.5, lon: 0.5}

	cell, code := LatLngToCell(&g, -1)
	require.Equal(t, H3_NULL, cell)
	require.Equal(t, E_RES_DOMAIN, code)

	cell, code = LatLngToCell(&g, MAX_H3_RES+1)
	require.Equal(t, H3_NULL, cell)
	require.Equal(t, E_RES_DOMAIN, code)
}

// TestBoundaryVertexCounts checks the vertex-count property from spec.md
// §8 scenario 6 (a res-0 hexagon boundary has 6 vertices, a pentagon
// boundary has 5). The scenario names concrete Uber-published indices
// (0x806dfffffffffff, 0x8009fffffffffff); those literals encode base-cell
// assignments from Uber's real table, which is not present anywhere in
// this exercise's retrieved corpus (see DESIGN.md), so this exercises the
// same property against a representative res-0 hexagon/pentagon drawn from
// this module's own generated base-cell topology instead.
func TestBoundaryVertexCounts(t *testing.T) {
	t.Parallel()
	hex := _setH3Index(0, firstHexBaseCell(t), CENTER_DIGIT)
	require.False(t, H3IsPentagon(hex))
	var hexBoundary GeoBoundary
	H3ToGeoBoundary(hex, &hexBoundary)
	require.Equal(t, NUM_HEX_VERTS, hexBoundary.numVerts)

	pent := _setH3Index(0, firstPentagonBaseCell(t), CENTER_DIGIT)
	require.True(t, H3IsPentagon(pent))
	var pentBoundary GeoBoundary
	H3ToGeoBoundary(pent, &pentBoundary)
	require.Equal(t, NUM_PENT_VERTS, pentBoundary.numVerts)
}

// TestGeoToH3CollapsesFailuresToNull checks that the teacher-style GeoToH3
// wrapper still reports H3_NULL on the same invalid inputs, while a finite,
// in-range call succeeds and agrees with LatLngToCell.
func TestGeoToH3CollapsesFailuresToNull(t *testing.T) {
	t.Parallel()
	infinite := GeoCoord{lat: math.Inf(1), lon: 0}
	require.Equal(t, H3_NULL, GeoToH3(&infinite, 5))

	finite := GeoCoord{lat: 37.77, lon: -122.41}
	want, code := LatLngToCell(&finite, 9)
	require.Equal(t, E_SUCCESS, code)
	require.Equal(t, want, GeoToH3(&finite, 9))
	require.NotEqual(t, H3_NULL, want)
}
