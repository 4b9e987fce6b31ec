package snake

import "fmt"

// Cell is a terminal character cell inside a Bound, 0-indexed
type Cell struct {
	Col int
	Row int
}

// C is a convenience constructor for Cell
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.Col, c.Row)
}

// Bound is the wraparound display rectangle, in terminal cells
type Bound struct {
	Width  int
	Height int
}

// NewBound creates a bound; dimensions below 1 are raised to 1
func NewBound(width, height int) Bound {
	return Bound{Width: max(width, 1), Height: max(height, 1)}
}

// Contains reports whether c lies inside the bound
func (b Bound) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < b.Width && c.Row >= 0 && c.Row < b.Height
}

// Project maps a lattice position onto the torus. The origin lands at the
// center; one lattice step spans two columns so movement looks square.
func (b Bound) Project(p Pos) Cell {
	return Cell{
		Col: wrap(b.Width/2+p.X*2, b.Width),
		Row: wrap(b.Height/2-p.Y, b.Height),
	}
}

// wrap is the Euclidean remainder, always in [0,n)
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
