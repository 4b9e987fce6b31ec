package snake

import "fmt"

// Pos is a coordinate on the unbounded lattice. Y grows up, X grows right.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Step returns the position one unit away in direction d
func (p Pos) Step(d Direction) Pos {
	switch d {
	case Up:
		p.Y++
	case Down:
		p.Y--
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
