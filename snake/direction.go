package snake

// Direction is a 4-way compass heading. The zero value None means no heading,
// used for ticks without input.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four headings in glyph-table order
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse heading; None maps to itself
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
