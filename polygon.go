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

// GeoLoop is a closed sequence of vertices, the outer boundary of a
// polygon or one of its holes. The loop is not explicitly closed: the
// first vertex is not repeated at the end.
type GeoLoop struct {
	Verts []GeoCoord
}

// GeoPolygon is a single outer loop plus zero or more hole loops.
type GeoPolygon struct {
	Outer GeoLoop
	Holes []GeoLoop
}

// GeoMultiPolygon is the flat, caller-owned form of a set of disjoint (or
// nested) polygons, each with its own holes.
type GeoMultiPolygon struct {
	Polygons []GeoPolygon
}

// LinkedGeoLoop is a loop in the intermediate linked representation
// produced while assembling a cell set's boundary.
type LinkedGeoLoop struct {
	Verts []GeoCoord
}

// LinkedGeoPolygon is the intermediate, owning aggregate produced by
// cellsToLinkedMultiPolygon: a singly linked list of polygons, each with an
// outer loop and a slice of hole loops. Every LinkedGeoPolygon must eventually be passed to
// a call that walks and releases it (here, simply dropping all references,
// since this is a garbage collected implementation; this API still models
// the explicit-ownership contract of the spec).
type LinkedGeoPolygon struct {
	Outer LinkedGeoLoop
	Holes []LinkedGeoLoop
	Next  *LinkedGeoPolygon
}

// cellsToLinkedMultiPolygon builds the boundary of a set of cells as a
// linked list of polygons, each with its outer loop and any holes.
//
// Algorithm (vertex graph assembly, grounded in vertexgraph.go): for every
// cell, walk its boundary and add each directed edge (from -> to) to a
// vertex graph; if the reverse edge (to -> from) is already present (it
// came from a neighboring cell in the set sharing this edge), remove it
// instead of adding the new one. What remains is exactly the outer
// boundary of the union. Loops are then assembled by following the
// from->to chain starting from any remaining edge until it closes.
//
// Ambiguous source behavior, reproduced deliberately (see spec's design
// notes): two cells that only touch at a single vertex, with no shared
// edge, are NOT merged into one polygon with a pinch point; each becomes
// its own single-loop polygon in the output. This matches the documented
// "incorrect but preserved" behavior of the algorithm this was ported
// from.
func cellsToLinkedMultiPolygon(cells []H3Index) (*LinkedGeoPolygon, ErrorCode) {
	if len(cells) == 0 {
		return nil, E_SUCCESS
	}

	res := H3_GET_RESOLUTION(cells[0])
	numBuckets := len(cells)*6 + 1
	var graph VertexGraph
	initVertexGraph(&graph, numBuckets, res)

	for _, cell := range cells {
		if !H3IsValid(cell) {
			return nil, E_CELL_INVALID
		}
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		for i := 0; i < gb.numVerts; i++ {
			from := gb.verts[i]
			to := gb.verts[(i+1)%gb.numVerts]

			if existing := findNodeForEdge(&graph, &to, &from); existing != nil {
				removeVertexNode(&graph, existing)
			} else {
				addVertexNode(&graph, &from, &to)
			}
		}
	}

	loops := assembleLoops(&graph)
	// Every vertex graph constructed here is destroyed here: spec.md's
	// lifecycle section pairs every construction operation with a destroy
	// that releases every node.
	destroyVertexGraph(&graph)
	return classifyLoopsIntoPolygons(loops), E_SUCCESS
}

// assembleLoops consumes every remaining edge in the graph, chaining
// from->to edges into closed loops.
func assembleLoops(graph *VertexGraph) []LinkedGeoLoop {
	var loops []LinkedGeoLoop

	for {
		node := firstVertexNode(graph)
		if node == nil {
			break
		}

		var loop LinkedGeoLoop
		start := node.from
		cur := node
		for {
			loop.Verts = append(loop.Verts, cur.from)
			next := findNodeForVertex(graph, &cur.to)
			removeVertexNode(graph, cur)
			if next == nil || geoAlmostEqual(&cur.to, &start) {
				break
			}
			cur = next
		}
		loops = append(loops, loop)
	}

	return loops
}

// classifyLoopsIntoPolygons groups loops into polygons by signed area:
// a loop with positive signed area (ccw) starts a new polygon as its
// outer boundary; a loop with negative signed area (cw) is a hole, and is
// attached to the outer loop that contains one of its vertices.
func classifyLoopsIntoPolygons(loops []LinkedGeoLoop) *LinkedGeoPolygon {
	if len(loops) == 0 {
		return nil
	}

	var outers []*LinkedGeoPolygon
	var holes []LinkedGeoLoop

	for _, loop := range loops {
		if signedLoopArea(loop.Verts) >= 0 {
			outers = append(outers, &LinkedGeoPolygon{Outer: loop})
		} else {
			holes = append(holes, loop)
		}
	}

	// Two isolated cells sharing only a vertex (and hence no canceled
	// edge between them) produce two outer loops here with no hole
	// involved; each keeps its own single-loop polygon, which is the
	// deliberately preserved "incorrect" behavior described in the
	// package design notes.
	for _, hole := range holes {
		owner := outers[0]
		if len(hole.Verts) > 0 {
			for _, candidate := range outers {
				if loopContainsPoint(candidate.Outer.Verts, hole.Verts[0]) {
					owner = candidate
					break
				}
			}
		}
		owner.Holes = append(owner.Holes, hole)
	}

	for i := 0; i < len(outers)-1; i++ {
		outers[i].Next = outers[i+1]
	}
	return outers[0]
}

// signedLoopArea returns twice the signed planar area of a loop in
// lat/lon space (positive for counter-clockwise), sufficient to classify
// outer loops from holes without needing true geodesic area.
func signedLoopArea(verts []GeoCoord) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		sum += a.lon*b.lat - b.lon*a.lat
	}
	return sum
}

// loopContainsPoint performs a planar point-in-polygon test (ray casting)
// in lat/lon space, sufficient for classifying holes against the outer
// loop that encloses them.
func loopContainsPoint(verts []GeoCoord, p GeoCoord) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if (vi.lat > p.lat) != (vj.lat > p.lat) &&
			p.lon < (vj.lon-vi.lon)*(p.lat-vi.lat)/(vj.lat-vi.lat)+vi.lon {
			inside = !inside
		}
	}
	return inside
}

// linkedToFlatMultiPolygon performs the deep copy from the intermediate
// linked representation into the caller-owned flat GeoMultiPolygon form.
func linkedToFlatMultiPolygon(linked *LinkedGeoPolygon) GeoMultiPolygon {
	var out GeoMultiPolygon
	for p := linked; p != nil; p = p.Next {
		poly := GeoPolygon{
			Outer: GeoLoop{Verts: append([]GeoCoord(nil), p.Outer.Verts...)},
		}
		for _, h := range p.Holes {
			poly.Holes = append(poly.Holes, GeoLoop{Verts: append([]GeoCoord(nil), h.Verts...)})
		}
		out.Polygons = append(out.Polygons, poly)
	}
	return out
}

// CellsToMultiPolygon is the public entry point combining linked assembly
// and the flattening deep copy; it is what most callers want.
func CellsToMultiPolygon(cells []H3Index) (GeoMultiPolygon, ErrorCode) {
	linked, code := cellsToLinkedMultiPolygon(cells)
	if code != E_SUCCESS {
		return GeoMultiPolygon{}, code
	}
	return linkedToFlatMultiPolygon(linked), E_SUCCESS
}
