package render

import (
	"github.com/lixenwraith/snaking/snake"
	"github.com/lixenwraith/snaking/terminal"
)

// ANSISurface emits glyphs as ESC[row;colH directives on a raw terminal.
// Layers are ignored; glyphs use the terminal's default colors.
type ANSISurface struct {
	term    terminal.Terminal
	scratch []byte
}

// NewANSISurface draws on an initialized terminal
func NewANSISurface(term terminal.Terminal) *ANSISurface {
	return &ANSISurface{term: term, scratch: make([]byte, 0, 4096)}
}

func (s *ANSISurface) Size() (int, int) {
	return s.term.Size()
}

func (s *ANSISurface) Clear() {
	s.term.Clear()
}

func (s *ANSISurface) Draw(_ Layer, glyphs ...snake.Glyph) {
	buf := s.scratch[:0]
	for _, g := range glyphs {
		buf = snake.AppendDirective(buf, g)
	}
	s.term.Write(buf)
	s.scratch = buf
}

func (s *ANSISurface) Text(x, y int, str string) {
	s.term.PutString(x, y, str)
}

func (s *ANSISurface) Show() error {
	return s.term.Flush()
}
