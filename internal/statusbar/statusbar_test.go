package statusbar

import (
	"testing"
	"time"

	"github.com/parley-edit/parley/internal/types"
)

func TestTemporaryMessageLifecycle(t *testing.T) {
	sb := New()
	if got := sb.Message(); got != "" {
		t.Errorf("fresh status bar has message %q", got)
	}

	sb.SetTemporaryMessage("Autosaved to %s", "/tmp/.x.swp")
	if got := sb.Message(); got != "Autosaved to /tmp/.x.swp" {
		t.Errorf("Message() = %q", got)
	}

	sb.ResetTemporaryMessage()
	if got := sb.Message(); got != "" {
		t.Errorf("message survived reset: %q", got)
	}
}

func TestTemporaryMessageExpires(t *testing.T) {
	sb := New()
	sb.messageTimeout = 10 * time.Millisecond
	sb.SetTemporaryMessage("blink")
	time.Sleep(20 * time.Millisecond)
	if got := sb.Message(); got != "" {
		t.Errorf("expired message still reported: %q", got)
	}
}

func TestDefaultDisplayText(t *testing.T) {
	sb := New()
	sb.SetFileInfo("session.tsv", true)
	sb.SetCursorInfo(types.Cursor{Row: 2, Field: types.FieldContent, Col: 7}, 1)

	want := "session.tsv [Modified] -- Entry: 2, Row: 3, Col: 7 (content)"
	if got := sb.getDefaultDisplayText(); got != want {
		t.Errorf("default text = %q, want %q", got, want)
	}

	sb.SetFileInfo("", false)
	sb.SetCursorInfo(types.Cursor{}, 0)
	want = "[No Name] -- Entry: 1, Row: 1, Col: 0 (content)"
	if got := sb.getDefaultDisplayText(); got != want {
		t.Errorf("default text = %q, want %q", got, want)
	}
}
