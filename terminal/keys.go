package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Modifier flags, bit-compatible with the xterm modifier parameter minus one
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// arrowKeys maps the final byte of CSI (ESC [) and SS3 (ESC O) cursor sequences
var arrowKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// lookupCSI decodes the bytes after ESC [ up to and including the final byte.
// Cursor keys may carry a modifier parameter ("1;5A" is Ctrl+Up); every other
// sequence decodes to KeyNone.
func lookupCSI(seq []byte) (Key, Modifier) {
	key, ok := arrowKeys[seq[len(seq)-1]]
	if !ok {
		return KeyNone, ModNone
	}
	params := seq[:len(seq)-1]
	switch {
	case len(params) == 0:
		return key, ModNone
	case len(params) == 3 && params[0] == '1' && params[1] == ';' && params[2] >= '2' && params[2] <= '8':
		return key, Modifier(params[2] - '1')
	}
	return KeyNone, ModNone
}
