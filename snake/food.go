package snake

import (
	"io"
	"math/rand/v2"
	"strings"
)

// Food is a cell generated against a bound. Values are immutable; eaten
// food is replaced with a new one.
type Food struct {
	cell  Cell
	bound Bound
	glyph rune
}

// NewRand returns a fast non-cryptographic generator seeded from system entropy
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SomewhereWithin places food uniformly on the columns a head can reach and
// on any row. A nil rng uses a freshly seeded generator.
func SomewhereWithin(bound Bound, rng *rand.Rand) Food {
	if rng == nil {
		rng = NewRand()
	}
	// Head columns are Width/2 + 2x (mod Width)
	col := wrap(bound.Width/2+2*rng.IntN(bound.Width), bound.Width)
	row := rng.IntN(bound.Height)
	return Food{cell: Cell{Col: col, Row: row}, bound: bound, glyph: FoodGlyph}
}

// FoodAt places food at a fixed cell
func FoodAt(bound Bound, c Cell) Food {
	return Food{cell: c, bound: bound, glyph: FoodGlyph}
}

// WithGlyph returns a copy drawn with r
func (f Food) WithGlyph(r rune) Food {
	f.glyph = r
	return f
}

// Cell returns the food position
func (f Food) Cell() Cell { return f.cell }

// Bound returns the bound the food was generated against
func (f Food) Bound() Bound { return f.bound }

// Glyph returns the positioned food marker
func (f Food) Glyph() Glyph { return Glyph{Cell: f.cell, Rune: f.glyph} }

// IsEatenBy reports whether the snake head projects onto the food cell
func (f Food) IsEatenBy(s *Snake) bool {
	head, ok := s.Cells(f.bound).Next()
	return ok && head == f.cell
}

// WriteTo implements io.WriterTo
func (f Food) WriteTo(w io.Writer) (int64, error) {
	return writeGlyphs(w, []Glyph{f.Glyph()})
}

func (f Food) String() string {
	var sb strings.Builder
	f.WriteTo(&sb)
	return sb.String()
}
