package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaking/snake"
)

// TcellSurface draws through a tcell screen, coloring each layer
type TcellSurface struct {
	screen tcell.Screen
	styles [3]tcell.Style
}

// NewTcellSurface draws on an initialized screen
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	s := &TcellSurface{screen: screen}
	s.styles[LayerSnake] = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	s.styles[LayerFood] = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	s.styles[LayerText] = tcell.StyleDefault
	return s
}

func (s *TcellSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

func (s *TcellSurface) Draw(layer Layer, glyphs ...snake.Glyph) {
	style := s.styles[layer]
	for _, g := range glyphs {
		s.screen.SetContent(g.Cell.Col, g.Cell.Row, g.Rune, nil, style)
	}
}

func (s *TcellSurface) Text(x, y int, str string) {
	width, _ := s.screen.Size()
	for _, r := range str {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, r, nil, s.styles[LayerText])
		x++
	}
}

func (s *TcellSurface) Show() error {
	s.screen.Show()
	return nil
}
