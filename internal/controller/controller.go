// internal/controller/controller.go
package controller

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/core"
	"github.com/parley-edit/parley/internal/event"
	"github.com/parley-edit/parley/internal/input"
	"github.com/parley-edit/parley/internal/logger"
	"github.com/parley-edit/parley/internal/statusbar"
	"github.com/parley-edit/parley/internal/store"
	"github.com/parley-edit/parley/internal/types"
)

// Controller owns the key-event loop's decision making: it decodes events
// into actions, runs them against the editor one at a time, keeps the
// autosave keystroke counter, and reports statuses. One event is fully
// processed before the next is accepted.
type Controller struct {
	editor         *core.Editor
	inputProcessor *input.Processor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	keystrokes       int
	autosaveInterval int
}

// Config holds dependencies for the Controller.
type Config struct {
	Editor           *core.Editor
	InputProcessor   *input.Processor
	EventManager     *event.Manager
	StatusBar        *statusbar.StatusBar
	QuitSignal       chan<- struct{}
	AutosaveInterval int
}

// New creates a new Controller.
func New(cfg Config) *Controller {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("controller.New: Missing required dependencies in Config")
	}
	interval := cfg.AutosaveInterval
	if interval <= 0 {
		interval = config.DefaultAutosaveInterval
	}
	return &Controller{
		editor:           cfg.Editor,
		inputProcessor:   cfg.InputProcessor,
		eventManager:     cfg.EventManager,
		statusBar:        cfg.StatusBar,
		quitSignal:       cfg.QuitSignal,
		autosaveInterval: interval,
	}
}

// HandleKeyEvent processes one key event to completion. Returns true if the
// event resulted in a state change requiring a redraw.
func (c *Controller) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := c.inputProcessor.ProcessEvent(ev)

	// Every key drops a stale status before its own outcome is reported,
	// ignored ones included.
	c.statusBar.ResetTemporaryMessage()

	switch actionEvent.Action {
	case input.ActionUnknown:
		return false
	case input.ActionRejected:
		c.statusBar.SetTemporaryMessage("Control key pressed: %s (ignored)", actionEvent.KeyName)
		return true
	}

	// Accepted event: advance the autosave counter.
	c.keystrokes++
	if c.keystrokes >= c.autosaveInterval {
		c.autosave()
		c.keystrokes = 0
	}

	originalCursor := c.editor.Cursor()
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionQuit:
		// auto-repeated '~' must not close the channel twice
		c.quitOnce.Do(func() { close(c.quitSignal) })
		return false

	case input.ActionSave:
		c.save()

	case input.ActionUndo:
		c.statusBar.SetTemporaryMessage(c.editor.Undo())
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	case input.ActionMoveUp:
		c.editor.MoveUp()
	case input.ActionMoveDown:
		c.editor.MoveDown()
	case input.ActionMoveLeft:
		c.editor.MoveLeft()
	case input.ActionMoveRight:
		c.editor.MoveRight()
	case input.ActionMoveHome:
		c.editor.Home()
	case input.ActionMoveEnd:
		c.editor.End()
	case input.ActionToggleField:
		c.editor.ToggleField()

	case input.ActionInsertRune:
		c.editor.InsertRune(actionEvent.Rune)
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	case input.ActionBackspace:
		c.editor.Backspace()
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	case input.ActionSplit:
		if msg := c.editor.Split(); msg != "" {
			c.statusBar.SetTemporaryMessage(msg)
		}
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	case input.ActionClearSpeaker:
		// '\' only acts in the speaker field; in content it is swallowed.
		if c.editor.Cursor().Field == types.FieldSpeaker {
			c.editor.ClearSpeaker()
			c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})
		}

	case input.ActionMoveEntryUp:
		c.statusBar.SetTemporaryMessage(c.editor.MoveEntry(-1))
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	case input.ActionMoveEntryDown:
		c.statusBar.SetTemporaryMessage(c.editor.MoveEntry(1))
		c.eventManager.Dispatch(event.TypeRecordsModified, event.RecordsModifiedData{})

	default:
		actionProcessed = false
	}

	newCursor := c.editor.Cursor()
	if actionProcessed && newCursor != originalCursor {
		c.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
			Cursor: newCursor,
			Record: c.editor.CurrentRecord(),
		})
	}
	return actionProcessed
}

// KeystrokeCount returns the autosave counter's current value.
func (c *Controller) KeystrokeCount() int {
	return c.keystrokes
}

// save writes the transcript and reports the outcome as a status. A failed
// save leaves the in-memory state untouched; editing continues.
func (c *Controller) save() {
	err := c.editor.Save()
	switch {
	case errors.Is(err, store.ErrNoFilePath):
		c.statusBar.SetTemporaryMessage("No filename provided.")
	case err != nil:
		logger.Errorf("Controller: save failed: %v", err)
		c.statusBar.SetTemporaryMessage("Error saving file: %v", err)
	default:
		c.statusBar.SetTemporaryMessage("File saved.")
		c.eventManager.Dispatch(event.TypeFileSaved, event.FileSavedData{FilePath: c.editor.Store().FilePath()})
	}
}

// autosave writes the swap file. Failure is a status, never fatal, and never
// rolls back the edit that triggered it.
func (c *Controller) autosave() {
	path, err := c.editor.Autosave()
	if err != nil {
		logger.Errorf("Controller: autosave failed: %v", err)
		c.statusBar.SetTemporaryMessage("Error autosaving: %v", err)
		return
	}
	c.statusBar.SetTemporaryMessage("Autosaved to %s", path)
	c.eventManager.Dispatch(event.TypeAutosaved, event.AutosavedData{FilePath: path})
}
