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

// ChildIterator lazily walks the descendants of a single cell at a target
// resolution, in the same digit-lexicographic (and pentagon k-axis
// skipping) order as H3ToChildren, without ever materializing the full
// list. It is a value type: copying it does not share position, and it is
// not safe to step from two goroutines at once.
type ChildIterator struct {
	parent   H3Index
	childRes int
	total    int64
	pos      int64
	current  H3Index
	done     bool
}

// IterChildren returns an iterator over every descendant of parent at
// childRes. If childRes is not a valid descendant resolution of parent the
// returned iterator is immediately exhausted.
func IterChildren(parent H3Index, childRes int) *ChildIterator {
	it := &ChildIterator{parent: parent, childRes: childRes}
	count, code := cellToChildrenSize(parent, childRes)
	if code != E_SUCCESS {
		it.done = true
		return it
	}
	it.total = count
	it.pos = -1
	return it
}

// Next advances the iterator and reports whether a cell is available. Call
// Cell to retrieve it. Next must be called before the first Cell access.
func (it *ChildIterator) Next() bool {
	if it.done {
		return false
	}
	it.pos++
	if it.pos >= it.total {
		it.done = true
		it.current = H3_NULL
		return false
	}
	cell, code := childPosToCell(it.pos, it.parent, it.childRes)
	if code != E_SUCCESS {
		it.done = true
		it.current = H3_NULL
		return false
	}
	it.current = cell
	return true
}

// Cell returns the cell at the iterator's current position. Valid only
// after a call to Next that returned true.
func (it *ChildIterator) Cell() H3Index {
	return it.current
}

// Done reports whether the iterator is exhausted.
func (it *ChildIterator) Done() bool {
	return it.done
}

// CellsAtResIterator lazily walks every cell at a given resolution across
// all base cells, by chaining a ChildIterator per base cell. It never
// allocates a slice of the full (potentially enormous) result set.
type CellsAtResIterator struct {
	res       int
	baseCell  int
	sub       *ChildIterator
	current   H3Index
	done      bool
}

// IterCellsAtRes returns an iterator over every valid cell at res.
func IterCellsAtRes(res int) *CellsAtResIterator {
	it := &CellsAtResIterator{res: res, baseCell: 0}
	if res < 0 || res > MAX_H3_RES {
		it.done = true
		return it
	}
	it.sub = IterChildren(_setH3Index(0, 0, CENTER_DIGIT), res)
	return it
}

// Next advances the iterator and reports whether a cell is available.
func (it *CellsAtResIterator) Next() bool {
	if it.done {
		return false
	}
	for {
		if it.sub != nil && it.sub.Next() {
			it.current = it.sub.Cell()
			return true
		}
		it.baseCell++
		if it.baseCell >= NUM_BASE_CELLS {
			it.done = true
			it.current = H3_NULL
			it.sub = nil
			return false
		}
		it.sub = IterChildren(_setH3Index(0, it.baseCell, CENTER_DIGIT), it.res)
	}
}

// Cell returns the cell at the iterator's current position. Valid only
// after a call to Next that returned true.
func (it *CellsAtResIterator) Cell() H3Index {
	return it.current
}

// Done reports whether the iterator is exhausted.
func (it *CellsAtResIterator) Done() bool {
	return it.done
}
