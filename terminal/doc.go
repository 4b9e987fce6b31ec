// Package terminal provides direct ANSI terminal control for the game screens.
//
// Features:
//   - Raw mode with alternate screen and hidden cursor
//   - Buffered output flushed once per frame
//   - Raw stdin input parsing with escape sequence handling
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
