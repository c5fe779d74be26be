// Package promptline keeps a persistent two-line prompt/status region
// anchored near the bottom of a terminal: a user-input prompt line and an
// independently updatable status line. When the terminal supports cursor
// addressing the region is redrawn in place at absolute rows computed from
// the current window size; otherwise the lines degrade to plain sequential
// output. Rendering is best effort and never fails the caller.
package promptline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"promptline/internal/terminal"
)

var errNoGeometry = errors.New("terminal geometry unavailable")

// fder is implemented by *os.File and anything else carrying a real file
// descriptor. Only such outputs can be probed for TTY-ness and geometry.
type fder interface {
	Fd() uintptr
}

// Session owns the render state for one output terminal.
//
// A single mutex serializes every operation: the render flags, the termios
// configuration and the output stream are shared resources, and a status
// update racing a render would interleave escape sequences and corrupt the
// display. Critical sections are short (at most a geometry query and one
// write); no operation blocks, retries or is cancellable.
type Session struct {
	mu sync.Mutex

	// Output receives all rendered bytes. Defaults to os.Stdout. Tests
	// substitute an in-memory buffer to assert on the exact escape bytes.
	Output io.Writer

	// Input is the terminal whose input mode is configured and restored.
	// Defaults to os.Stdin.
	Input *os.File

	// size overrides the geometry probe. Tests use it to pin the window
	// dimensions; when nil the output's file descriptor is queried.
	size func() (cols, rows int, err error)

	ansiSupported    bool
	snapshot         *terminal.ModeSnapshot
	promptRendered   bool
	statusLineActive bool
	suspended        bool
}

// ConfigureForPrompt determines once whether the output supports ANSI cursor
// addressing, honoring the PROMPTLINE_FORCE_ANSI and PROMPTLINE_DISABLE_ANSI
// environment overrides (disable wins), and, when the input is an
// interactive terminal, captures its termios settings and suppresses the
// visual echo of control keystrokes (the ^C glyph) while leaving canonical
// input and signal generation intact.
//
// Each call re-probes from scratch. A snapshot still held from an earlier
// call is restored before a new one is captured, so the terminal is never
// stranded in a modified state. On error no snapshot is retained and the
// session stays usable in fallback presentation.
func (s *Session) ConfigureForPrompt() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isTTY := false
	if f, ok := s.output().(fder); ok {
		isTTY = terminal.OutputIsTerminal(f.Fd())
	}
	s.ansiSupported = terminal.SupportsANSI(isTTY)

	if s.snapshot != nil {
		_ = s.snapshot.Restore()
		s.snapshot = nil
	}

	in := s.input()
	if in == nil || !terminal.InputIsTerminal(int(in.Fd())) {
		return nil
	}

	snap, err := terminal.CaptureMode(int(in.Fd()))
	if err != nil {
		return fmt.Errorf("configure terminal for prompt: %w", err)
	}
	if err := snap.ApplyNoCtlEcho(); err != nil {
		return fmt.Errorf("configure terminal for prompt: %w", err)
	}
	s.snapshot = snap
	return nil
}

// RestoreTerminalSettings puts the input terminal back into the mode
// captured by ConfigureForPrompt. It is a no-op when no snapshot is held,
// so it is safe to call unconditionally on every exit path, and safe to
// call twice.
func (s *Session) RestoreTerminalSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return
	}
	_ = s.snapshot.Restore()
	s.snapshot = nil
}

func (s *Session) output() io.Writer {
	if s.Output != nil {
		return s.Output
	}
	return os.Stdout
}

func (s *Session) input() *os.File {
	if s.Input != nil {
		return s.Input
	}
	return os.Stdin
}

// geometry reads the current window size. Never cached: the terminal can be
// resized between any two calls.
func (s *Session) geometry() (cols, rows int, err error) {
	if s.size != nil {
		return s.size()
	}
	f, ok := s.output().(fder)
	if !ok {
		return 0, 0, errNoGeometry
	}
	return terminal.Size(int(f.Fd()))
}

// write sends rendered bytes to the output. Display is best effort; write
// errors must never reach the caller.
func (s *Session) write(p []byte) {
	_, _ = s.output().Write(p)
}
