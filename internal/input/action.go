// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta ---
	ActionUnknown  Action = iota // unmapped input, silently ignored
	ActionRejected               // control code outside Tab/Enter, reported then ignored
	ActionQuit                   // '~': clean quit
	ActionSave                   // '`': write transcript
	ActionUndo                   // Delete key

	// --- Cursor movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// --- Field / record manipulation ---
	ActionInsertRune    // requires Rune argument
	ActionBackspace     // delete backward (with wrap/join cases)
	ActionSplit         // Enter: split record at cursor
	ActionToggleField   // Tab: switch speaker/content, column reset
	ActionClearSpeaker  // '\': empty the speaker field
	ActionMoveEntryUp   // Page Up: swap record with predecessor
	ActionMoveEntryDown // Page Down: swap record with successor
)

// ActionEvent is a decoded input event. Rune carries the character for
// ActionInsertRune; KeyName carries a printable name for diagnostics on
// rejected control codes.
type ActionEvent struct {
	Action  Action
	Rune    rune
	KeyName string
}
