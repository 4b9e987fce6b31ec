// Package render draws game frames onto a terminal surface.
package render

import "github.com/lixenwraith/snaking/snake"

// Layer tells a surface what kind of glyph it is drawing
type Layer uint8

const (
	LayerSnake Layer = iota
	LayerFood
	LayerText
)

// Surface is a frame-at-a-time drawing target
type Surface interface {
	// Size returns the drawable area in cells
	Size() (width, height int)

	// Clear blanks the frame
	Clear()

	// Draw places positioned glyphs
	Draw(layer Layer, glyphs ...snake.Glyph)

	// Text writes s starting at (x, y); cells past the right edge are dropped
	Text(x, y int, s string)

	// Show presents everything drawn since the last Clear
	Show() error
}

// Centered returns the x at which s is horizontally centered, offset by dx columns
func Centered(width int, s string, dx int) int {
	x := width/2 - len([]rune(s))/2 + dx
	return max(x, 0)
}
