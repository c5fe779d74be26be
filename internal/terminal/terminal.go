// Package terminal wraps the platform-specific pieces of driving a
// terminal: capability detection, geometry queries, termios handling and
// the escape sequences the renderer emits.
package terminal

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// VT100 escape sequences used by the renderer.
const (
	// ClearLine erases the entire current line.
	ClearLine = "\x1b[2K"
	// SaveCursor stores the current cursor position (DECSC).
	SaveCursor = "\x1b7"
	// RestoreCursor returns to the stored cursor position (DECRC).
	RestoreCursor = "\x1b8"
)

// Environment overrides for ANSI capability detection. Any non-empty value
// counts; disable wins when both are set.
const (
	EnvForceANSI   = "PROMPTLINE_FORCE_ANSI"
	EnvDisableANSI = "PROMPTLINE_DISABLE_ANSI"
)

// MoveTo returns the sequence positioning the cursor at the given 1-based
// row and column.
func MoveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// SupportsANSI decides whether cursor-addressing escape sequences should be
// used, given whether the output is an interactive terminal. The
// environment overrides take precedence over the probe, and the disable
// signal takes precedence over force.
func SupportsANSI(outputIsTerminal bool) bool {
	supported := outputIsTerminal
	if os.Getenv(EnvForceANSI) != "" {
		supported = true
	}
	if os.Getenv(EnvDisableANSI) != "" {
		supported = false
	}
	return supported
}

// OutputIsTerminal reports whether fd is attached to an interactive
// terminal, including Cygwin/MSYS pseudo terminals.
func OutputIsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// InputIsTerminal reports whether fd is an interactive terminal.
func InputIsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Size queries the current window size of the terminal attached to fd.
// The result is never cached; the terminal can be resized at any time.
func Size(fd int) (cols, rows int, err error) {
	return term.GetSize(fd)
}
