package input

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snaking/terminal"
)

// ErrClosed is returned once the input stream has ended
var ErrClosed = errors.New("input closed")

// Source delivers intents to the game loop
type Source interface {
	// Poll waits up to timeout for one key press. ok is false on timeout.
	// Unbound keys still end the wait and return IntentNone.
	Poll(timeout time.Duration) (intent Intent, ok bool, err error)

	// Wait blocks until the next key press
	Wait() (Intent, error)
}

// TerminalSource reads the raw ANSI backend
type TerminalSource struct {
	events <-chan terminal.Event
	keys   *KeyTable
}

// NewTerminalSource decodes events from term with the given key table
func NewTerminalSource(term terminal.Terminal, keys *KeyTable) *TerminalSource {
	return &TerminalSource{events: term.Events(), keys: keys}
}

func (s *TerminalSource) Poll(timeout time.Duration) (Intent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		return s.decode(ev, ok)
	case <-timer.C:
		return Intent{}, false, nil
	}
}

func (s *TerminalSource) Wait() (Intent, error) {
	ev, open := <-s.events
	intent, _, err := s.decode(ev, open)
	return intent, err
}

func (s *TerminalSource) decode(ev terminal.Event, open bool) (Intent, bool, error) {
	if !open {
		return Intent{}, false, ErrClosed
	}
	switch ev.Type {
	case terminal.EventError:
		return Intent{}, false, ev.Err
	case terminal.EventClosed:
		return Intent{}, false, ErrClosed
	}
	return s.keys.FromTerminal(ev), true, nil
}

// TcellSource pumps tcell screen events. Non-key events (resize, focus)
// are skipped without ending a poll. Events arriving while the buffer is
// full are dropped so the pump can always reach the end of the stream.
type TcellSource struct {
	events chan tcell.Event
	keys   *KeyTable
}

// NewTcellSource starts the event pump; it stops when the screen is finalized
func NewTcellSource(screen tcell.Screen, keys *KeyTable) *TcellSource {
	s := &TcellSource{
		events: make(chan tcell.Event, 64),
		keys:   keys,
	}
	go func() {
		defer close(s.events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			default:
				// Channel full, drop event
			}
		}
	}()
	return s
}

func (s *TcellSource) Poll(timeout time.Duration) (Intent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return Intent{}, false, ErrClosed
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				return s.keys.FromTcell(key), true, nil
			}
		case <-timer.C:
			return Intent{}, false, nil
		}
	}
}

func (s *TcellSource) Wait() (Intent, error) {
	for ev := range s.events {
		if key, isKey := ev.(*tcell.EventKey); isKey {
			return s.keys.FromTcell(key), nil
		}
	}
	return Intent{}, ErrClosed
}
