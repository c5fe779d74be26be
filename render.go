package promptline

import (
	"bytes"

	"github.com/mattn/go-runewidth"

	"promptline/internal/terminal"
)

// Row requirements for positioned drawing. A full redraw touches four rows
// from the bottom (prompt, status, padding, bottom); a status patch only
// needs the status row to exist.
const (
	minRowsRender = 4
	minRowsPatch  = 3
)

// RenderPrompt draws the prompt and status lines, replacing whatever the
// region showed before. With ANSI support and at least four rows the lines
// are drawn at absolute positions near the bottom of the screen and the
// cursor is parked at the end of the prompt text, so input typed by the
// process keeps appearing in the right place. Otherwise both lines are
// written as plain sequential output. A render supersedes any suspension.
func (s *Session) RenderPrompt(prompt, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suspended = false

	if !s.ansiSupported {
		s.renderPlain(prompt, status)
		return
	}
	cols, rows, err := s.geometry()
	if err != nil || rows < minRowsRender {
		s.renderPlain(prompt, status)
		return
	}
	s.renderPositioned(prompt, status, cols, rows)
}

// UpdateStatusLine rewrites only the status row, leaving the prompt row and
// any in-progress typing undisturbed: the cursor position is saved, the
// status row is cleared and rewritten, and the cursor is restored. It is a
// no-op unless a positioned render previously drew the status line and the
// session is not suspended. If the geometry cannot support row math at call
// time, the patch degrades to clearing and rewriting the current line in
// place.
func (s *Session) UpdateStatusLine(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ansiSupported || !s.statusLineActive {
		return
	}

	var buf bytes.Buffer
	buf.WriteString(terminal.SaveCursor)
	if cols, rows, err := s.geometry(); err == nil && rows >= minRowsPatch {
		buf.WriteString(terminal.MoveTo(rows-2, 1))
		buf.WriteString(terminal.ClearLine)
		buf.WriteString(clipToWidth(status, cols))
	} else {
		buf.WriteString("\r")
		buf.WriteString(terminal.ClearLine)
		buf.WriteString(status)
	}
	buf.WriteString(terminal.RestoreCursor)
	s.write(buf.Bytes())
}

// SuspendPromptUpdates blanks the prompt/status region so other output can
// scroll through, and marks the session suspended. It is a no-op when ANSI
// is unsupported. The caller must render again to bring the region back;
// ResumePromptUpdates alone does not redraw.
func (s *Session) SuspendPromptUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ansiSupported {
		return
	}
	s.suspended = true
	if !s.promptRendered {
		return
	}

	var buf bytes.Buffer
	if _, rows, err := s.geometry(); err == nil && rows >= minRowsRender {
		for row := rows - 3; row <= rows; row++ {
			buf.WriteString(terminal.MoveTo(row, 1))
			buf.WriteString(terminal.ClearLine)
		}
		buf.WriteString(terminal.MoveTo(rows-3, 1))
	} else {
		buf.WriteString("\r")
		buf.WriteString(terminal.ClearLine)
	}
	s.write(buf.Bytes())

	s.promptRendered = false
	s.statusLineActive = false
}

// ResumePromptUpdates clears the suspended flag. Nothing is redrawn until
// the next RenderPrompt.
func (s *Session) ResumePromptUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suspended = false
}

// renderPositioned draws the region at absolute rows: prompt at rows-3,
// status at rows-2, with the two bottom rows cleared as padding. All bytes
// for the redraw are assembled first and written in a single call so a
// concurrent reader of the stream never observes a half-drawn region.
func (s *Session) renderPositioned(prompt, status string, cols, rows int) {
	promptRow := rows - 3
	statusRow := rows - 2

	prompt = clipToWidth(prompt, cols)
	status = clipToWidth(status, cols)

	var buf bytes.Buffer
	buf.WriteString(terminal.MoveTo(promptRow, 1))
	buf.WriteString(terminal.ClearLine)
	buf.WriteString(prompt)
	buf.WriteString(terminal.MoveTo(statusRow, 1))
	buf.WriteString(terminal.ClearLine)
	buf.WriteString(status)
	for row := rows - 1; row <= rows; row++ {
		buf.WriteString(terminal.MoveTo(row, 1))
		buf.WriteString(terminal.ClearLine)
	}

	// Park the cursor at the end of the prompt text.
	col := runewidth.StringWidth(prompt) + 1
	if col > cols {
		col = cols
	}
	buf.WriteString(terminal.MoveTo(promptRow, col))
	s.write(buf.Bytes())

	s.promptRendered = true
	s.statusLineActive = true
}

// renderPlain writes the two lines sequentially with no cursor addressing.
// Independent status updates are not possible afterwards.
func (s *Session) renderPlain(prompt, status string) {
	var buf bytes.Buffer
	buf.WriteString(prompt)
	buf.WriteByte('\n')
	buf.WriteString(status)
	buf.WriteByte('\n')
	s.write(buf.Bytes())

	s.promptRendered = true
	s.statusLineActive = false
}

// clipToWidth truncates a line to the terminal width so it can never wrap
// and push the region rows out of position.
func clipToWidth(line string, cols int) string {
	if cols <= 0 {
		return line
	}
	return runewidth.Truncate(line, cols, "")
}
