// internal/core/editor.go
package core

import (
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/core/history"
	"github.com/parley-edit/parley/internal/logger"
	"github.com/parley-edit/parley/internal/reflow"
	"github.com/parley-edit/parley/internal/store"
	"github.com/parley-edit/parley/internal/types"
)

// Editor is the single mutable session object: the record store plus the
// derived display table, cursor and viewport. One controller owns it; the
// reflow and cursor computations it calls are pure functions over the store.
type Editor struct {
	store  *store.Store
	table  reflow.Table
	cursor types.Cursor
	scroll int // first visible display row

	viewWidth  int
	viewHeight int // rows available for the table, status bar excluded

	history *history.Manager
}

// NewEditor creates an editor over the given store and pushes the
// session-start undo snapshot. The table stays empty until SetViewSize
// supplies a geometry.
func NewEditor(st *store.Store, undoDepth int) *Editor {
	e := &Editor{
		store:   st,
		cursor:  types.Cursor{Row: 0, Field: types.FieldContent, Col: 0},
		history: history.NewManager(undoDepth),
	}
	e.history.Push(e.snapshot())
	return e
}

// SetViewSize updates the cached view dimensions and reflows for the new
// content width. Called on resize and before the first draw.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0
	}
	e.Reflow()
}

// ContentWidth returns the column budget for record text: whatever the
// terminal leaves after the line-number gutter, the speaker column and the
// separators. The reflow engine additionally caps it at reflow.WrapCap.
func (e *Editor) ContentWidth() int {
	w := e.viewWidth - (config.LineNumWidth + config.SpeakerWidth + 2*config.ColSep)
	if w < 1 {
		w = 1
	}
	return w
}

// Reflow rebuilds the display table from the store and clamps the cursor and
// viewport into the new table.
func (e *Editor) Reflow() {
	e.table = reflow.Build(e.store.Records(), e.ContentWidth())

	if e.cursor.Row >= len(e.table) {
		e.cursor.Row = len(e.table) - 1
		e.cursor.Col = 0
	}
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if max := e.fieldLength(); e.cursor.Col > max {
		e.cursor.Col = max
	}
	e.scrollToCursor()
}

// Store returns the editor's record store.
func (e *Editor) Store() *store.Store {
	return e.store
}

// Table returns the current display table.
func (e *Editor) Table() reflow.Table {
	return e.table
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() types.Cursor {
	return e.cursor
}

// Scroll returns the first visible display row.
func (e *Editor) Scroll() int {
	return e.scroll
}

// CurrentSegment returns the display segment under the cursor.
func (e *Editor) CurrentSegment() reflow.Segment {
	if e.cursor.Row < 0 || e.cursor.Row >= len(e.table) {
		return reflow.Segment{}
	}
	return e.table[e.cursor.Row]
}

// CurrentRecord returns the index of the record under the cursor.
func (e *Editor) CurrentRecord() int {
	return e.CurrentSegment().Record
}

// snapshot captures the full session state for the undo stack.
func (e *Editor) snapshot() history.Snapshot {
	return history.Snapshot{
		Records: e.store.Snapshot(),
		Cursor:  e.cursor,
		Scroll:  e.scroll,
	}
}

// UndoDepth reports the current undo stack size.
func (e *Editor) UndoDepth() int {
	return e.history.Depth()
}

// Save writes the transcript to its file.
func (e *Editor) Save() error {
	return e.store.Save()
}

// Autosave writes the transcript to the swap path, leaving the session's
// modified state untouched. Returns the path written.
func (e *Editor) Autosave() (string, error) {
	path := e.store.SwapPath()
	if err := e.store.SaveTo(path); err != nil {
		return path, err
	}
	logger.Debugf("Editor: autosaved to %s", path)
	return path, nil
}
