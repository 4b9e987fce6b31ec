package snake

import (
	"io"
	"strings"
)

// Snake owns the head position and the run-length body.
// It has a single owner; no method is safe for concurrent use.
type Snake struct {
	head Pos
	body *Body
}

// New creates a straight snake heading Up whose head is at head.
// Lengths below 1 are raised to 1, an empty body cannot be constructed.
func New(head Pos, length int) *Snake {
	return &Snake{
		head: head,
		body: NewBody(Segment{Dir: Up, Len: max(length, 1)}),
	}
}

// FromSegments builds a snake from an explicit head-to-tail body
func FromSegments(head Pos, segs ...Segment) *Snake {
	return &Snake{head: head, body: NewBody(segs...)}
}

// Head returns the head position
func (s *Snake) Head() Pos { return s.head }

// Heading returns the front segment direction, None for an empty body
func (s *Snake) Heading() Direction {
	if f := s.body.Front(); f != nil {
		return f.Dir
	}
	return None
}

// Len returns the body length in cells
func (s *Snake) Len() int { return s.body.Total() }

// Segments returns a copy of the body, head to tail
func (s *Snake) Segments() SegmentList { return s.body.Snapshot() }

// Positions starts a fresh walk over the body, head first
func (s *Snake) Positions() *PosIter {
	return NewPosIter(s.body, s.head)
}

// Cells starts a fresh walk over the projected body, head first
func (s *Snake) Cells(bound Bound) *CellIter {
	return NewCellIter(s.Positions(), bound)
}

// Advance performs one tick. A genuine turn opens a new front segment;
// repeats and reversals are dropped. The head then moves one step and
// the tail retracts by one cell.
func (s *Snake) Advance(turn Direction) {
	front := s.body.Front()
	if front == nil {
		return
	}

	if turn != None && turn != front.Dir && turn != front.Dir.Opposite() {
		s.body.PushFront(Segment{Dir: turn})
		front = s.body.Front()
	}

	s.head = s.head.Step(front.Dir)
	front.Len++

	back := s.body.Back()
	if back.Len > 1 {
		back.Len--
	} else {
		s.body.PopBack()
	}
}

// Grow lengthens the tail segment by one cell
func (s *Snake) Grow() {
	if back := s.body.Back(); back != nil {
		back.Len++
	}
}

// Collided reports whether the head overlaps any other body cell
func (s *Snake) Collided() bool {
	it := s.Positions()
	if _, ok := it.Next(); !ok {
		return false
	}
	for p := range it.All() {
		if p == s.head {
			return true
		}
	}
	return false
}

// Occupies reports whether any projected body cell equals c
func (s *Snake) Occupies(bound Bound, c Cell) bool {
	for cell := range s.Cells(bound).All() {
		if cell == c {
			return true
		}
	}
	return false
}

// Glyphs lays out the snake for display: head glyph by heading, then body glyphs
func (s *Snake) Glyphs(bound Bound, set GlyphSet) []Glyph {
	glyphs := make([]Glyph, 0, s.Len())
	head := set.Head(s.Heading())
	it := s.Cells(bound)
	for c := range it.All() {
		r := set.Body
		if len(glyphs) == 0 {
			r = head
		}
		glyphs = append(glyphs, Glyph{Cell: c, Rune: r})
	}
	return glyphs
}

// Formatter renders the snake as ANSI cursor directives
type Formatter struct {
	snake *Snake
	bound Bound
	set   GlyphSet
}

// Formatter binds the snake to a display bound and glyph table
func (s *Snake) Formatter(bound Bound, set GlyphSet) Formatter {
	return Formatter{snake: s, bound: bound, set: set}
}

// WriteTo implements io.WriterTo
func (f Formatter) WriteTo(w io.Writer) (int64, error) {
	return writeGlyphs(w, f.snake.Glyphs(f.bound, f.set))
}

func (f Formatter) String() string {
	var sb strings.Builder
	f.WriteTo(&sb)
	return sb.String()
}
