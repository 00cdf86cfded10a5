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

// TestCellsToEdgeCanonical checks that cellsToEdge is symmetric in its
// arguments (it always canonicalizes to the smaller endpoint), per spec.md
// §3's undirected-edge data model.
func TestCellsToEdgeCanonical(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	ring, code := gridRing(origin, 1)
	require.Equal(t, E_SUCCESS, code)
	require.NotEmpty(t, ring)
	neighbor := ring[0]

	e1, code := cellsToEdge(origin, neighbor)
	require.Equal(t, E_SUCCESS, code)
	e2, code := cellsToEdge(neighbor, origin)
	require.Equal(t, E_SUCCESS, code)
	require.Equal(t, e1, e2)
	require.True(t, IsValidEdge(e1))
}

// TestCellsToEdgeNotNeighbors checks the E_NOT_NEIGHBORS failure mode.
func TestCellsToEdgeNotNeighbors(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	disk, code := gridDisk(origin, 2)
	require.Equal(t, E_SUCCESS, code)

	var farAway H3Index
	for _, c := range disk {
		d, code := gridDistance(origin, c)
		if code == E_SUCCESS && d == 2 {
			farAway = c
			break
		}
	}
	require.NotZero(t, farAway)

	_, code = cellsToEdge(origin, farAway)
	require.Equal(t, E_NOT_NEIGHBORS, code)
}

// TestEdgeToCellsRoundTrip checks that edgeToCells recovers the same pair
// of cells cellsToEdge was built from.
func TestEdgeToCellsRoundTrip(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 4)
	ring, code := gridRing(origin, 1)
	require.Equal(t, E_SUCCESS, code)
	neighbor := ring[0]

	edge, code := cellsToEdge(origin, neighbor)
	require.Equal(t, E_SUCCESS, code)

	a, b, code := edgeToCells(edge)
	require.Equal(t, E_SUCCESS, code)
	require.ElementsMatch(t, []H3Index{origin, neighbor}, []H3Index{a, b})
}

// TestCellToEdgesCountMatchesNeighbors checks that cellToEdges returns one
// edge per neighbor (5 for a pentagon, 6 otherwise).
func TestCellToEdgesCountMatchesNeighbors(t *testing.T) {
	t.Parallel()
	hex := hexOriginAtRes(t, 4)
	edges, code := cellToEdges(hex)
	require.Equal(t, E_SUCCESS, code)
	require.Len(t, edges, NUM_HEX_VERTS)

	pent := _setH3Index(4, firstPentagonBaseCell(t), CENTER_DIGIT)
	edges, code = cellToEdges(pent)
	require.Equal(t, E_SUCCESS, code)
	require.Len(t, edges, NUM_PENT_VERTS)
}

// TestEdgeLengthPositive checks that every undirected edge around a cell
// has a positive length in all three units.
func TestEdgeLengthPositive(t *testing.T) {
	t.Parallel()
	hex := hexOriginAtRes(t, 4)
	edges, code := cellToEdges(hex)
	require.Equal(t, E_SUCCESS, code)

	for _, e := range edges {
		rads, code := edgeLengthRads(e)
		require.Equal(t, E_SUCCESS, code)
		require.Greater(t, rads, 0.0)

		km, code := edgeLengthKm(e)
		require.Equal(t, E_SUCCESS, code)
		require.Greater(t, km, 0.0)

		m, code := edgeLengthM(e)
		require.Equal(t, E_SUCCESS, code)
		require.InDelta(t, km*1000.0, m, 1e-6)
	}
}
