// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (arrows, Tab, Enter, ...) to editor actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps the literal punctuation shortcuts to actions.
type RuneKeymap map[rune]Action

// Processor translates tcell key events into ActionEvents.
type Processor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewProcessor creates a processor with the default bindings.
func NewProcessor() *Processor {
	p := &Processor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the key surface: printables insert, Tab
// toggles the field, Enter splits, Page Up/Down move the record, Delete is
// undo, and three punctuation shortcuts cover clear/save/quit.
func (p *Processor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyPgUp] = ActionMoveEntryUp
	p.keymap[tcell.KeyPgDn] = ActionMoveEntryDown
	p.keymap[tcell.KeyTab] = ActionToggleField
	p.keymap[tcell.KeyEnter] = ActionSplit
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace
	p.keymap[tcell.KeyDelete] = ActionUndo

	p.runeKeymap['\\'] = ActionClearSpeaker
	p.runeKeymap['`'] = ActionSave
	p.runeKeymap['~'] = ActionQuit
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Control codes outside the keymap are rejected with a
// diagnostic name; runes outside the printable ASCII range are ignored.
func (p *Processor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()

	if key == tcell.KeyRune {
		if ev.Modifiers()&^tcell.ModShift != 0 {
			return ActionEvent{Action: ActionRejected, KeyName: ev.Name()}
		}
		r := ev.Rune()
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		if r >= 32 && r <= 126 {
			return ActionEvent{Action: ActionInsertRune, Rune: r}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}

	// Everything else is a control code the editor does not speak.
	return ActionEvent{Action: ActionRejected, KeyName: ev.Name()}
}
