// Package input turns key events from either backend into game intents.
package input

import "github.com/lixenwraith/snaking/snake"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone    IntentType = iota
	IntentQuit               // q, ESC, Ctrl+C
	IntentConfirm            // Enter
	IntentTurn               // arrows, h/j/k/l
)

// Intent is one decoded key press
type Intent struct {
	Type IntentType
	Dir  snake.Direction // Set for IntentTurn
}

// Turn returns the heading requested by the intent, snake.None otherwise
func (i Intent) Turn() snake.Direction {
	if i.Type != IntentTurn {
		return snake.None
	}
	return i.Dir
}

func turn(d snake.Direction) Intent {
	return Intent{Type: IntentTurn, Dir: d}
}
