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

// ContainmentMode selects how a cell's relationship to a polygon is
// judged during polyfill.
type ContainmentMode int

const (
	// ContainmentCenter emits a cell when its center point is inside the
	// polygon.
	ContainmentCenter ContainmentMode = iota
	// ContainmentOverlapping emits a cell when it shares any point with
	// the polygon (center inside, a vertex inside, or a boundary
	// crossing).
	ContainmentOverlapping
	// ContainmentOverlappingBBox is like ContainmentOverlapping but
	// tests against the polygon's bounding box rather than its exact
	// boundary, trading precision for speed.
	ContainmentOverlappingBBox
	// ContainmentFull emits a cell only when every one of its vertices
	// is inside the polygon and none of its edges cross a polygon edge.
	// As documented in the package design notes, the crossing test used
	// here is sufficient but not exhaustive: it can miss a crossing when
	// a polygon edge runs extremely close to (or just touches) a cell
	// edge, so such a cell may still be emitted.
	ContainmentFull
)

type polyfillState int

const (
	polyfillInit polyfillState = iota
	polyfillActive
	polyfillExhausted
)

// CellPolygonIterator lazily emits the cells at a fixed resolution that
// satisfy a containment mode against a polygon, without ever
// materializing the full result set. It walks the interior of the
// polygon breadth-first from a seed cell located by its first vertex,
// which is always sufficient because the seed need not itself satisfy
// the containment mode: any cell adjacent to the boundary is reachable
// from it by grid adjacency. Allocation is confined to the queue and
// visited set, sized to the polygon's bounding box.
type CellPolygonIterator struct {
	state   polyfillState
	poly    GeoPolygon
	res     int
	mode    ContainmentMode
	bbox    BBox
	visited map[H3Index]bool
	queue   []H3Index
	current H3Index
}

// IterCellsPolygonCompact returns an iterator over the cells at res
// satisfying mode against poly.
func IterCellsPolygonCompact(poly GeoPolygon, res int, mode ContainmentMode) *CellPolygonIterator {
	return &CellPolygonIterator{
		state: polyfillInit,
		poly:  poly,
		res:   res,
		mode:  mode,
	}
}

// Next advances the iterator, returning whether a cell is available.
func (it *CellPolygonIterator) Next() bool {
	switch it.state {
	case polyfillExhausted:
		return false
	case polyfillInit:
		if !it.start() {
			it.state = polyfillExhausted
			return false
		}
		it.state = polyfillActive
	}

	for len(it.queue) > 0 {
		cell := it.queue[0]
		it.queue = it.queue[1:]

		matches := cellSatisfiesContainment(cell, it.poly, it.mode)

		ring, code := gridRing(cell, 1)
		if code == E_SUCCESS {
			for _, n := range ring {
				if n == H3_NULL || it.visited[n] {
					continue
				}
				it.visited[n] = true
				if cellNearPolygon(n, &it.bbox, polyfillPad(it.res)) {
					it.queue = append(it.queue, n)
				}
			}
		}

		if matches {
			it.current = cell
			return true
		}
	}

	it.state = polyfillExhausted
	it.current = H3_NULL
	return false
}

// Cell returns the cell at the iterator's current position.
func (it *CellPolygonIterator) Cell() H3Index {
	return it.current
}

// Done reports whether the iterator is exhausted.
func (it *CellPolygonIterator) Done() bool {
	return it.state == polyfillExhausted
}

func (it *CellPolygonIterator) start() bool {
	it.bbox = polygonBBox(it.poly)
	if len(it.poly.Outer.Verts) == 0 {
		return false
	}

	seedPoint := it.poly.Outer.Verts[0]
	seed := GeoToH3(&seedPoint, it.res)
	if seed == H3_NULL {
		return false
	}

	want := MaxGridDiskSize(2)
	it.visited = make(map[H3Index]bool, want)
	it.visited[seed] = true
	it.queue = []H3Index{seed}
	return true
}

// polygonBBox returns the bounding box of a polygon's outer loop.
func polygonBBox(poly GeoPolygon) BBox {
	if len(poly.Outer.Verts) == 0 {
		return BBox{}
	}
	first := poly.Outer.Verts[0]
	box := BBox{north: first.lat, south: first.lat, east: first.lon, west: first.lon}
	for _, v := range poly.Outer.Verts[1:] {
		if v.lat > box.north {
			box.north = v.lat
		}
		if v.lat < box.south {
			box.south = v.lat
		}
		if v.lon > box.east {
			box.east = v.lon
		}
		if v.lon < box.west {
			box.west = v.lon
		}
	}
	return box
}

// cellNearPolygon reports whether a cell's center falls within a few cell
// widths of the polygon's bounding box, used to bound the BFS flood fill so
// it terminates instead of covering the whole grid. The margin scales with
// the target resolution's edge length rather than a fixed constant, so the
// fill stays proportional to the polygon regardless of how fine res is.
func cellNearPolygon(cell H3Index, box *BBox, pad float64) bool {
	var g GeoCoord
	H3ToGeo(cell, &g)
	return g.lat >= box.south-pad && g.lat <= box.north+pad &&
		g.lon >= box.west-pad && g.lon <= box.east+pad
}

// polyfillPad returns the BFS search margin, in radians, for a given
// resolution: a small multiple of that resolution's edge length so the
// flood fill only ever explores a thin ring of cells beyond the polygon's
// own bounding box.
func polyfillPad(res int) float64 {
	return 3 * EdgeLengthKm(res) / EARTH_RADIUS_KM
}

// cellSatisfiesContainment applies a single containment mode test to a
// cell against a polygon.
func cellSatisfiesContainment(cell H3Index, poly GeoPolygon, mode ContainmentMode) bool {
	var center GeoCoord
	H3ToGeo(cell, &center)
	centerIn := polygonContainsPoint(poly, center)

	switch mode {
	case ContainmentCenter:
		return centerIn
	case ContainmentOverlappingBBox:
		if centerIn {
			return true
		}
		box := polygonBBox(poly)
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		cellBox := polygonBBox(GeoPolygon{Outer: GeoLoop{Verts: gb.verts[:gb.numVerts]}})
		return cellBox.south <= box.north && cellBox.north >= box.south &&
			cellBox.west <= box.east && cellBox.east >= box.west
	case ContainmentOverlapping:
		if centerIn {
			return true
		}
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		for i := 0; i < gb.numVerts; i++ {
			if polygonContainsPoint(poly, gb.verts[i]) {
				return true
			}
		}
		return cellCrossesPolygon(&gb, poly)
	case ContainmentFull:
		var gb GeoBoundary
		H3ToGeoBoundary(cell, &gb)
		for i := 0; i < gb.numVerts; i++ {
			if !polygonContainsPoint(poly, gb.verts[i]) {
				return false
			}
		}
		return !cellCrossesPolygon(&gb, poly)
	default:
		return centerIn
	}
}

// polygonContainsPoint tests a point against a polygon's outer loop minus
// its holes.
func polygonContainsPoint(poly GeoPolygon, p GeoCoord) bool {
	if !loopContainsPoint(poly.Outer.Verts, p) {
		return false
	}
	for _, hole := range poly.Holes {
		if loopContainsPoint(hole.Verts, p) {
			return false
		}
	}
	return true
}

// cellCrossesPolygon is the sufficient-but-not-exhaustive boundary test
// backing ContainmentFull and ContainmentOverlapping: it checks each of
// the cell's edges against each of the polygon's (outer and hole) edges
// for a planar segment intersection in lat/lon space. This is a stand-in
// for a true pole-orthogonality great-circle arc test and, per the
// package design notes, can miss a crossing when a polygon edge runs
// extremely close to (without technically crossing) a cell edge.
func cellCrossesPolygon(gb *GeoBoundary, poly GeoPolygon) bool {
	for i := 0; i < gb.numVerts; i++ {
		a := gb.verts[i]
		b := gb.verts[(i+1)%gb.numVerts]
		if loopEdgesCross(a, b, poly.Outer.Verts) {
			return true
		}
		for _, hole := range poly.Holes {
			if loopEdgesCross(a, b, hole.Verts) {
				return true
			}
		}
	}
	return false
}

func loopEdgesCross(a, b GeoCoord, loop []GeoCoord) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		c := loop[i]
		d := loop[(i+1)%n]
		if segmentsIntersect(a, b, c, d) {
			return true
		}
	}
	return false
}

func segmentsIntersect(p1, p2, p3, p4 GeoCoord) bool {
	d1 := crossSign(p3, p4, p1)
	d2 := crossSign(p3, p4, p2)
	d3 := crossSign(p1, p2, p3)
	d4 := crossSign(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func crossSign(a, b, p GeoCoord) float64 {
	return (b.lon-a.lon)*(p.lat-a.lat) - (b.lat-a.lat)*(p.lon-a.lon)
}
