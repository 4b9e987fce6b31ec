package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaking/snake"
	"github.com/lixenwraith/snaking/terminal"
)

// KeyTable maps keys from both backends to intents
type KeyTable struct {
	// Special keys from the raw ANSI backend
	SpecialKeys map[terminal.Key]Intent

	// Special keys from the tcell backend
	TcellKeys map[tcell.Key]Intent

	// Printable bindings, shared by both backends
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Intent{
			terminal.KeyCtrlC:  {Type: IntentQuit},
			terminal.KeyEscape: {Type: IntentQuit},
			terminal.KeyEnter:  {Type: IntentConfirm},
			terminal.KeyUp:     turn(snake.Up),
			terminal.KeyDown:   turn(snake.Down),
			terminal.KeyLeft:   turn(snake.Left),
			terminal.KeyRight:  turn(snake.Right),
		},
		TcellKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyEnter:  {Type: IntentConfirm},
			tcell.KeyUp:     turn(snake.Up),
			tcell.KeyDown:   turn(snake.Down),
			tcell.KeyLeft:   turn(snake.Left),
			tcell.KeyRight:  turn(snake.Right),
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'h': turn(snake.Left),
			'j': turn(snake.Down),
			'k': turn(snake.Up),
			'l': turn(snake.Right),
		},
	}
}

// FromTerminal decodes a raw backend event; unbound keys give IntentNone
func (kt *KeyTable) FromTerminal(ev terminal.Event) Intent {
	if ev.Type != terminal.EventKey {
		return Intent{}
	}
	if ev.Key == terminal.KeyRune {
		if ev.Modifiers&terminal.ModAlt != 0 {
			return Intent{}
		}
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}

// FromTcell decodes a tcell key event; unbound keys give IntentNone
func (kt *KeyTable) FromTcell(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Intent{}
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.TcellKeys[ev.Key()]
}
