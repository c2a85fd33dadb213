// internal/event/event.go
package event

import "github.com/parley-edit/parley/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Core editor events
	TypeRecordsModified // record content changed (insert/delete/split/move/undo)
	TypeFileLoaded      // transcript successfully loaded
	TypeFileSaved       // transcript successfully saved
	TypeAutosaved       // swap file written
	TypeCursorMoved     // cursor position changed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// RecordsModifiedData marks a change to the record list.
type RecordsModifiedData struct{}

// FileLoadedData carries the path of the loaded transcript.
type FileLoadedData struct {
	FilePath string
}

// FileSavedData carries the path of the saved transcript.
type FileSavedData struct {
	FilePath string
}

// AutosavedData carries the swap path written by an autosave.
type AutosavedData struct {
	FilePath string
}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	Cursor types.Cursor
	Record int
}

// AppReadyData accompanies TypeAppReady.
type AppReadyData struct{}

// AppQuitData accompanies TypeAppQuit.
type AppQuitData struct{}
