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

// hexDirOrder is the fixed cyclic order in which the six directions around
// a hexagon are numbered 0..5 for the purposes of vertex numbering. This is
// a deterministic convention for this implementation's substrate (see
// basecells.go), not a transcription of Uber's published vertex table.
var hexDirOrder = [NUM_HEX_VERTS]Direction{
	I_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
	JK_AXES_DIGIT, K_AXES_DIGIT, IK_AXES_DIGIT,
}

// pentDirOrder is the same convention with the deleted k-axis direction
// removed, leaving the five directions around a pentagon.
var pentDirOrder = [NUM_PENT_VERTS]Direction{
	I_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
	JK_AXES_DIGIT, IK_AXES_DIGIT,
}

// vertexNumForDirection returns the vertex number (0..5, or 0..4 on a
// pentagon) associated with the given direction from origin, or
// INVALID_VERTEX_NUM if the direction has no vertex (CENTER_DIGIT, or the
// deleted k-axis on a pentagon).
func vertexNumForDirection(origin H3Index, direction int) int {
	dir := Direction(direction)
	if H3IsPentagon(origin) {
		for i, d := range pentDirOrder {
			if d == dir {
				return i
			}
		}
		return INVALID_VERTEX_NUM
	}
	for i, d := range hexDirOrder {
		if d == dir {
			return i
		}
	}
	return INVALID_VERTEX_NUM
}

// directionForVertexNum is the inverse of vertexNumForDirection.
func directionForVertexNum(origin H3Index, vertexNum int) Direction {
	if H3IsPentagon(origin) {
		if vertexNum < 0 || vertexNum >= NUM_PENT_VERTS {
			return INVALID_DIGIT
		}
		return pentDirOrder[vertexNum]
	}
	if vertexNum < 0 || vertexNum >= NUM_HEX_VERTS {
		return INVALID_DIGIT
	}
	return hexDirOrder[vertexNum]
}

// maxVertexNum returns the number of vertexes a cell has: 5 for a
// pentagon, 6 otherwise.
func maxVertexNum(cell H3Index) int {
	if H3IsPentagon(cell) {
		return NUM_PENT_VERTS
	}
	return NUM_HEX_VERTS
}

// vertexNumOffset is the offset of the vertex number (0..5) within the
// reserved bit space, stored alongside the owning cell's mode field.
const vertexNumOffset = 0

// CellToVertex encodes the vertexNum-th vertex of cell as a vertex-mode
// H3Index. The given cell is always recorded as the owner: no canonical
// owner is chosen among the (generally three) cells that share the vertex,
// so the same geographic vertex reached from different cells gets
// different vertex indexes.
func CellToVertex(cell H3Index, vertexNum int) (H3Index, ErrorCode) {
	if !H3IsValid(cell) {
		return H3_NULL, E_CELL_INVALID
	}
	if vertexNum < 0 || vertexNum >= maxVertexNum(cell) {
		return H3_NULL, E_DOMAIN
	}
	out := cell
	H3_SET_MODE(&out, H3_VERTEX_MODE)
	H3_SET_RESERVED_BITS(&out, vertexNum)
	return out, E_SUCCESS
}

// CellToVertexes returns the vertex-mode index for every vertex of cell.
func CellToVertexes(cell H3Index) ([]H3Index, ErrorCode) {
	if !H3IsValid(cell) {
		return nil, E_CELL_INVALID
	}
	n := maxVertexNum(cell)
	out := make([]H3Index, n)
	for i := 0; i < n; i++ {
		v, code := CellToVertex(cell, i)
		if code != E_SUCCESS {
			return nil, code
		}
		out[i] = v
	}
	return out, E_SUCCESS
}

// IsValidVertex reports whether h is a well-formed vertex-mode index.
func IsValidVertex(h H3Index) bool {
	if H3_GET_MODE(h) != H3_VERTEX_MODE {
		return false
	}
	owner := h
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	vertexNum := H3_GET_RESERVED_BITS(h)
	H3_SET_RESERVED_BITS(&owner, 0)
	if !H3IsValid(owner) {
		return false
	}
	return vertexNum >= 0 && vertexNum < maxVertexNum(owner)
}

// VertexOwner returns the owning cell of a vertex-mode index.
func VertexOwner(vertex H3Index) (H3Index, ErrorCode) {
	if !IsValidVertex(vertex) {
		return H3_NULL, E_VERTEX_INVALID
	}
	owner := vertex
	H3_SET_MODE(&owner, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&owner, 0)
	return owner, E_SUCCESS
}

// VertexToLatLng returns the geographic coordinates of a vertex.
func VertexToLatLng(vertex H3Index) (GeoCoord, ErrorCode) {
	owner, code := VertexOwner(vertex)
	if code != E_SUCCESS {
		return GeoCoord{}, code
	}
	vertexNum := H3_GET_RESERVED_BITS(vertex)

	var fijk FaceIJK
	_h3ToFaceIjk(owner, &fijk)
	res := H3_GET_RESOLUTION(owner)

	var gb GeoBoundary
	if H3IsPentagon(owner) {
		_faceIjkPentToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, vertexNum, 1, &gb)
	}
	if gb.numVerts < 1 {
		return GeoCoord{}, E_FAILED
	}
	return gb.verts[0], E_SUCCESS
}
