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

// TestCellToLocalIjRoundTrip checks that every neighbor of a cell survives
// a CellToLocalIj -> LocalIjToCell round trip back to itself, per spec.md
// §4.7's local-IJ frame.
func TestCellToLocalIjRoundTrip(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 5)
	ring, code := gridDisk(origin, 1)
	require.Equal(t, E_SUCCESS, code)

	for _, cell := range ring {
		ij, code := CellToLocalIj(origin, cell, 0)
		require.Equal(t, E_SUCCESS, code)

		back, code := LocalIjToCell(origin, ij, 0)
		require.Equal(t, E_SUCCESS, code)
		require.Equal(t, cell, back)
	}
}

// TestCellToLocalIjRejectsNonzeroMode checks the E_OPTION_INVALID failure
// spec.md §4.7 requires for any nonzero mode.
func TestCellToLocalIjRejectsNonzeroMode(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 5)

	_, code := CellToLocalIj(origin, origin, 1)
	require.Equal(t, E_OPTION_INVALID, code)

	_, code = LocalIjToCell(origin, CoordIJ{}, 1)
	require.Equal(t, E_OPTION_INVALID, code)
}

// TestCellToLocalIjRejectsResMismatch checks E_RES_MISMATCH for cells at
// different resolutions.
func TestCellToLocalIjRejectsResMismatch(t *testing.T) {
	t.Parallel()
	origin := hexOriginAtRes(t, 5)
	child := H3ToCenterChild(origin, 6)

	_, code := CellToLocalIj(origin, child, 0)
	require.Equal(t, E_RES_MISMATCH, code)
}
