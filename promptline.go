package promptline

// Default is the process-wide session used by the package-level functions.
// It drives os.Stdout and configures os.Stdin, matching the foreign-callable
// surface where callers do not manage a session object themselves.
var Default = &Session{}

// ConfigureForPrompt configures the default session. See
// (*Session).ConfigureForPrompt.
func ConfigureForPrompt() error {
	return Default.ConfigureForPrompt()
}

// ConfigureForPromptCode is the status-code form of ConfigureForPrompt for
// bindings that expect a plain integer: 0 on success, -1 when terminal mode
// configuration fails.
func ConfigureForPromptCode() int32 {
	if err := Default.ConfigureForPrompt(); err != nil {
		return -1
	}
	return 0
}

// RestoreTerminalSettings restores the default session's terminal mode.
// Safe to call unconditionally during shutdown.
func RestoreTerminalSettings() {
	Default.RestoreTerminalSettings()
}

// RenderPrompt draws the prompt and status lines on the default session.
func RenderPrompt(prompt, status string) {
	Default.RenderPrompt(prompt, status)
}

// UpdateStatusLine rewrites the status line on the default session.
func UpdateStatusLine(status string) {
	Default.UpdateStatusLine(status)
}

// SuspendPromptUpdates blanks the default session's prompt region.
func SuspendPromptUpdates() {
	Default.SuspendPromptUpdates()
}

// ResumePromptUpdates lifts a suspension on the default session.
func ResumePromptUpdates() {
	Default.ResumePromptUpdates()
}
