package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetTitle sets the window title
	SetTitle(title string)

	// Clear queues a full screen clear
	Clear()

	// PutString queues s starting at cell (x, y), 0-indexed
	PutString(x, y int, s string)

	// Write queues raw bytes, typically pre-encoded cursor directives
	Write(p []byte) (int, error)

	// Flush sends everything queued since the last flush
	Flush() error

	// Events returns the input event channel
	Events() <-chan Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal on the platform backend (stdin/stdout)
func New() Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a terminal over an explicit backend
func NewWithBackend(b Backend) Terminal {
	return &termImpl{
		backend: b,
		writer:  bufio.NewWriterSize(backendWriter{b: b}, 16384),
		input:   newInputReader(b),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.writer.Write(csiAltScreenEnter)
	t.writer.Write(csiClear)
	t.writer.Write(csiCursorHide)
	// Prevents terminal scroll/wrap on bottom-right corner write
	t.writer.Write(csiAutoWrapOff)
	if err := t.writer.Flush(); err != nil {
		t.backend.Fini()
		return err
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.writer.Write(csiCursorShow)
	t.writer.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	t.writer.Write(csiAutoWrapOn)
	t.writer.Write(csiSGR0)
	t.writer.Flush()

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) SetTitle(title string) {
	writeTitle(t.writer, title)
}

func (t *termImpl) Clear() {
	t.writer.Write(csiClear)
}

func (t *termImpl) PutString(x, y int, s string) {
	writeCursorPos(t.writer, x, y)
	t.writer.WriteString(s)
}

func (t *termImpl) Write(p []byte) (int, error) {
	return t.writer.Write(p)
}

func (t *termImpl) Flush() error {
	return t.writer.Flush()
}

func (t *termImpl) Events() <-chan Event {
	return t.input.eventCh
}

// EmergencyReset attempts to restore terminal to a usable state
// Called from panic handlers, writes directly without buffering
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
