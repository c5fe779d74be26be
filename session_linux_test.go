package promptline

import (
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func openSessionPTY(t *testing.T) *Session {
	t.Helper()
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		ptm.Close()
		pts.Close()
	})
	return &Session{Output: pts, Input: pts}
}

func ptyTermios(t *testing.T, s *Session) *unix.Termios {
	t.Helper()
	tio, err := unix.IoctlGetTermios(int(s.Input.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatalf("read termios: %v", err)
	}
	return tio
}

func TestConfigureForPrompt_ConfiguresAndRestoresPTY(t *testing.T) {
	s := openSessionPTY(t)
	orig := *ptyTermios(t, s)

	if err := s.ConfigureForPrompt(); err != nil {
		t.Fatalf("ConfigureForPrompt: %v", err)
	}
	if s.snapshot == nil {
		t.Fatal("no snapshot held after configure on a PTY")
	}
	if tio := ptyTermios(t, s); tio.Lflag&unix.ECHOCTL != 0 {
		t.Errorf("ECHOCTL still set after configure, lflag = %#x", tio.Lflag)
	}

	s.RestoreTerminalSettings()
	if after := *ptyTermios(t, s); after != orig {
		t.Errorf("termios differ after restore:\n got %+v\nwant %+v", after, orig)
	}
	if s.snapshot != nil {
		t.Error("snapshot still held after restore")
	}

	// Second restore is a no-op.
	s.RestoreTerminalSettings()
	if after := *ptyTermios(t, s); after != orig {
		t.Error("second restore changed termios")
	}
}

func TestConfigureForPrompt_SecondCallRestoresHeldSnapshot(t *testing.T) {
	s := openSessionPTY(t)
	orig := *ptyTermios(t, s)

	if err := s.ConfigureForPrompt(); err != nil {
		t.Fatalf("first ConfigureForPrompt: %v", err)
	}
	if err := s.ConfigureForPrompt(); err != nil {
		t.Fatalf("second ConfigureForPrompt: %v", err)
	}

	// The second configure must have captured the original settings, not
	// the modified ones left behind by the first.
	s.RestoreTerminalSettings()
	if after := *ptyTermios(t, s); after != orig {
		t.Errorf("termios differ after restore:\n got %+v\nwant %+v", after, orig)
	}
}
