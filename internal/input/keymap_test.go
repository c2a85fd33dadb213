package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEvent(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name       string
		event      *tcell.EventKey
		wantAction Action
		wantRune   rune
	}{
		{"printable rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionInsertRune, 'a'},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionInsertRune, ' '},
		{"tilde quits", tcell.NewEventKey(tcell.KeyRune, '~', tcell.ModNone), ActionQuit, '~'},
		{"backtick saves", tcell.NewEventKey(tcell.KeyRune, '`', tcell.ModNone), ActionSave, '`'},
		{"backslash clears speaker", tcell.NewEventKey(tcell.KeyRune, '\\', tcell.ModNone), ActionClearSpeaker, '\\'},
		{"shifted rune still inserts", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), ActionInsertRune, 'A'},
		{"non-ascii rune ignored", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), ActionUnknown, 0},
		{"tab toggles field", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionToggleField, 0},
		{"enter splits", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionSplit, 0},
		{"delete undoes", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionUndo, 0},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionBackspace, 0},
		{"page up moves entry", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), ActionMoveEntryUp, 0},
		{"page down moves entry", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), ActionMoveEntryDown, 0},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft, 0},
	}
	for _, tc := range tests {
		got := p.ProcessEvent(tc.event)
		if got.Action != tc.wantAction {
			t.Errorf("%s: action = %v, want %v", tc.name, got.Action, tc.wantAction)
		}
		if tc.wantAction == ActionInsertRune && got.Rune != tc.wantRune {
			t.Errorf("%s: rune = %q, want %q", tc.name, got.Rune, tc.wantRune)
		}
	}
}

func TestProcessEventRejectsControlCodes(t *testing.T) {
	p := NewProcessor()

	controls := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyCtrlS, rune(tcell.KeyCtrlS), tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyCtrlQ, rune(tcell.KeyCtrlQ), tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
	}
	for _, ev := range controls {
		got := p.ProcessEvent(ev)
		if got.Action != ActionRejected {
			t.Errorf("%s: action = %v, want ActionRejected", ev.Name(), got.Action)
		}
		if got.KeyName == "" {
			t.Errorf("%s: rejected event carries no diagnostic name", ev.Name())
		}
	}

	// Alt-modified runes are control chords, not text.
	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt))
	if got.Action != ActionRejected {
		t.Errorf("Alt+a: action = %v, want ActionRejected", got.Action)
	}
}
