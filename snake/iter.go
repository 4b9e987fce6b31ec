package snake

import "iter"

// PosIter expands a segment sequence into absolute body positions, head to tail.
// An iterator is single-pass: once exhausted it yields nothing further.
// The segment source must not be mutated while the iterator is in use.
type PosIter struct {
	segs   Segments
	next   int // index of the next segment to pull
	active bool
	seg    Segment
	step   int
	pos    Pos
	done   bool
}

// NewPosIter starts a walk at start, which must be the head position
func NewPosIter(segs Segments, start Pos) *PosIter {
	return &PosIter{segs: segs, pos: start}
}

// Next yields the current position and then steps toward the tail
func (it *PosIter) Next() (Pos, bool) {
	for !it.done {
		if !it.active {
			if it.segs == nil || it.next >= it.segs.Len() {
				it.done = true
				break
			}
			it.seg = it.segs.At(it.next)
			it.next++
			it.active = true
			it.step = 0
			continue
		}

		if it.step >= it.seg.Len {
			it.active = false
			it.step = 0
			continue
		}

		current := it.pos
		it.pos = it.pos.Step(it.seg.Dir.Opposite())
		it.step++
		return current, true
	}
	return Pos{}, false
}

// All returns the remaining positions as a sequence sharing this iterator's cursor
func (it *PosIter) All() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice
func (it *PosIter) Collect() []Pos {
	var out []Pos
	for p := range it.All() {
		out = append(out, p)
	}
	return out
}

// CellIter projects each position of a PosIter into a bound
type CellIter struct {
	src   *PosIter
	bound Bound
}

// NewCellIter wraps src; order and count are preserved
func NewCellIter(src *PosIter, bound Bound) *CellIter {
	return &CellIter{src: src, bound: bound}
}

// Next yields the projection of the next body position
func (it *CellIter) Next() (Cell, bool) {
	p, ok := it.src.Next()
	if !ok {
		return Cell{}, false
	}
	return it.bound.Project(p), true
}

// All returns the remaining cells as a sequence sharing this iterator's cursor
func (it *CellIter) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice
func (it *CellIter) Collect() []Cell {
	var out []Cell
	for c := range it.All() {
		out = append(out, c)
	}
	return out
}
