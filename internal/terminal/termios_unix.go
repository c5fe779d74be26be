//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ModeSnapshot is a captured copy of a terminal's termios settings, held so
// the original configuration can be restored later.
type ModeSnapshot struct {
	fd      int
	termios unix.Termios
}

// CaptureMode reads the current termios settings of fd.
func CaptureMode(fd int) (*ModeSnapshot, error) {
	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("read terminal mode: %w", err)
	}
	return &ModeSnapshot{fd: fd, termios: *tio}, nil
}

// ApplyNoCtlEcho applies the captured settings with ECHOCTL cleared, so
// control keystrokes like ^C no longer leave a visible glyph. Canonical
// line input and signal generation stay untouched.
func (m *ModeSnapshot) ApplyNoCtlEcho() error {
	modified := m.termios
	modified.Lflag &^= unix.ECHOCTL
	if err := unix.IoctlSetTermios(m.fd, ioctlWriteTermios, &modified); err != nil {
		return fmt.Errorf("write terminal mode: %w", err)
	}
	return nil
}

// Restore writes the captured settings back to the terminal.
func (m *ModeSnapshot) Restore() error {
	if err := unix.IoctlSetTermios(m.fd, ioctlWriteTermios, &m.termios); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}
