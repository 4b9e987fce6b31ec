package snake

import (
	"bytes"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/lixenwraith/snaking/constant"
)

// NoHead is drawn for the head when the body has no heading to show
const NoHead = '?'

// FoodGlyph is the default food marker
const FoodGlyph = constant.GlyphFood

// GlyphSet is the 5-entry display table: one head glyph per heading plus the body glyph
type GlyphSet struct {
	Up    rune
	Down  rune
	Left  rune
	Right rune
	Body  rune
}

// DefaultGlyphs matches the arrow-head look of the classic terminal build
var DefaultGlyphs = GlyphSet{
	Up:    constant.GlyphUp,
	Down:  constant.GlyphDown,
	Left:  constant.GlyphLeft,
	Right: constant.GlyphRight,
	Body:  constant.GlyphBody,
}

// Head returns the head glyph for heading d, NoHead for None
func (g GlyphSet) Head(d Direction) rune {
	switch d {
	case Up:
		return g.Up
	case Down:
		return g.Down
	case Left:
		return g.Left
	case Right:
		return g.Right
	}
	return NoHead
}

// Glyph is one character placed at a cell
type Glyph struct {
	Cell Cell
	Rune rune
}

// AppendDirective appends the cursor-position sequence ESC[row;colH (1-based)
// followed by the glyph rune
func AppendDirective(dst []byte, g Glyph) []byte {
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(g.Cell.Row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(g.Cell.Col+1), 10)
	dst = append(dst, 'H')
	return utf8.AppendRune(dst, g.Rune)
}

// writeGlyphs encodes all glyphs and writes them in a single call
func writeGlyphs(w io.Writer, glyphs []Glyph) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(len(glyphs) * 12)
	scratch := make([]byte, 0, 16)
	for _, g := range glyphs {
		scratch = AppendDirective(scratch[:0], g)
		buf.Write(scratch)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
