//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "errors"

// unsupportedBackend lets the package build everywhere; Init always fails
// so callers fall back to the tcell backend
type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error {
	return errors.New("raw ANSI terminal not supported on this platform")
}

func (unsupportedBackend) Fini()                                {}
func (unsupportedBackend) Size() (int, int)                     { return 80, 24 }
func (unsupportedBackend) Write(p []byte) error                 { return nil }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, errClosed }

func resetTerminalMode() {}
