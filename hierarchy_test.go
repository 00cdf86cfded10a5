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

// TestCellToChildrenSizeMatchesEnumeration checks cellToChildrenSize
// against an explicit H3ToChildren enumeration, for both a hexagon and a
// pentagon lineage, across a couple of levels of descent.
func TestCellToChildrenSizeMatchesEnumeration(t *testing.T) {
	t.Parallel()
	hexBC := firstHexBaseCell(t)
	pentBC := firstPentagonBaseCell(t)

	for _, bc := range []int{hexBC, pentBC} {
		parent := _setH3Index(0, bc, CENTER_DIGIT)
		for childRes := 1; childRes <= 3; childRes++ {
			var children []H3Index
			H3ToChildren(parent, childRes, &children)

			size, code := cellToChildrenSize(parent, childRes)
			require.Equal(t, E_SUCCESS, code)
			require.EqualValues(t, len(children), size,
				"base cell %d childRes %d", bc, childRes)
		}
	}
}

// TestChildPosBijection checks that cellToChildPos and childPosToCell are
// mutual inverses across every child of a cell, for both a hexagon and a
// pentagon parent, matching spec.md's "Hierarchy bijection" property.
func TestChildPosBijection(t *testing.T) {
	t.Parallel()
	hexBC := firstHexBaseCell(t)
	pentBC := firstPentagonBaseCell(t)

	for _, bc := range []int{hexBC, pentBC} {
		parent := _setH3Index(0, bc, CENTER_DIGIT)
		const childRes = 2
		var children []H3Index
		H3ToChildren(parent, childRes, &children)

		for _, child := range children {
			pos, code := cellToChildPos(child, 0)
			require.Equal(t, E_SUCCESS, code)

			back, code := childPosToCell(pos, parent, childRes)
			require.Equal(t, E_SUCCESS, code)
			require.Equal(t, child, back, "base cell %d child %s", bc, child)
		}
	}
}

// TestChildPosToCellRejectsOutOfRange checks the E_DOMAIN failure mode
// spec.md documents for childPosToCell.
func TestChildPosToCellRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	parent := _setH3Index(0, firstHexBaseCell(t), CENTER_DIGIT)
	size, code := cellToChildrenSize(parent, 2)
	require.Equal(t, E_SUCCESS, code)

	_, code = childPosToCell(-1, parent, 2)
	require.Equal(t, E_DOMAIN, code)

	_, code = childPosToCell(size, parent, 2)
	require.Equal(t, E_DOMAIN, code)
}

// TestPentDescendantCountFormula checks the closed recursive relationship
// documented in hierarchy.go and SPEC_FULL.md: a pentagon's descendant
// count is its center subtree (still a pentagon) plus five ordinary
// hexagon subtrees.
func TestPentDescendantCountFormula(t *testing.T) {
	t.Parallel()
	require.EqualValues(t, 1, pentDescendantCount(0))
	for n := 1; n <= 4; n++ {
		want := pentDescendantCount(n-1) + 5*hexDescendantCount(n-1)
		require.Equal(t, want, pentDescendantCount(n))
	}
}

// TestParentChildRoundTrip checks cellToParent(cellToChildren(x)) == x, per
// spec.md invariant 5.
func TestParentChildRoundTrip(t *testing.T) {
	t.Parallel()
	parent := _setH3Index(1, firstHexBaseCell(t), K_AXES_DIGIT)
	children := parent.ToChildren(3)
	require.NotEmpty(t, children)
	for _, c := range children {
		require.Equal(t, parent, c.ToParent(1))
	}
}
