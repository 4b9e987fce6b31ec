package terminal

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
	"unicode/utf8"
)

// errClosed is returned by backends when input reaches EOF
var errClosed = errors.New("terminal input closed")

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventError            // Read error
	EventClosed           // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Err       error // For EventError
}

// inputReader handles raw stdin parsing
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly, keeps partial sequences across reads
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Wait with timeout - don't block forever if read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(200 * time.Millisecond):
	}
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if errors.Is(err, errClosed) {
			r.sendEvent(Event{Type: EventClosed})
			return
		}
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Timeout: a lone pending ESC is the Escape key, not a sequence start
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf)
		if consumed > 0 {
			n := copy(r.buf, r.buf[consumed:])
			r.buf = r.buf[:n]
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}
			consumed, ev := r.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += consumed
			continue
		}

		// Control characters and DEL; unbound ones decode to KeyNone
		if b < 0x20 || b == 0x7f {
			r.sendEvent(parseControl(b))
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i
		}
		rn, size := utf8.DecodeRune(data[i:])
		if rn != utf8.RuneError {
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		}
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (r *inputReader) parseEscape(data []byte) (int, Event) {
	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	}
	if data[1] == '[' {
		return parseCSI(data)
	}
	if data[1] == 'O' {
		if len(data) < 3 {
			return 0, Event{}
		}
		return 3, Event{Type: EventKey, Key: arrowKeys[data[2]]}
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// Anything else: ESC stands alone
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI scans to the final byte; unknown sequences are consumed as KeyNone
func parseCSI(data []byte) (int, Event) {
	const maxScan = 16
	for end := 2; end < len(data) && end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			key, mod := lookupCSI(data[2 : end+1])
			return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	if len(data) >= maxScan {
		return maxScan, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{} // Incomplete
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Type: EventKey, Key: KeyEnter}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	if ev.Type == EventKey && ev.Key == KeyNone {
		return
	}
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop event
	}
}
