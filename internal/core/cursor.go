// internal/core/cursor.go
package core

import "github.com/parley-edit/parley/internal/types"

// fieldLength returns the length of the active field's visible text at the
// cursor's row: the whole speaker name, or the current segment's text.
func (e *Editor) fieldLength() int {
	if len(e.table) == 0 {
		return 0
	}
	seg := e.table[e.cursor.Row]
	if e.cursor.Field == types.FieldSpeaker {
		return len(e.store.Record(seg.Record).Speaker)
	}
	return len(seg.Text)
}

// resolveContent places the cursor at the display position of the given
// logical (record, offset) position, in the content field.
func (e *Editor) resolveContent(record, offset int) {
	row, col := e.table.Resolve(record, offset)
	e.cursor = types.Cursor{Row: row, Field: types.FieldContent, Col: col}
	e.scrollToCursor()
}

// scrollToCursor keeps the cursor's row inside the visible window.
func (e *Editor) scrollToCursor() {
	if e.viewHeight <= 0 {
		return
	}
	if e.cursor.Row < e.scroll {
		e.scroll = e.cursor.Row
	}
	if e.cursor.Row >= e.scroll+e.viewHeight {
		e.scroll = e.cursor.Row - e.viewHeight + 1
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// MoveUp moves to the previous display row, clamping the column to the new
// row's field length.
func (e *Editor) MoveUp() {
	if e.cursor.Row == 0 {
		return
	}
	e.cursor.Row--
	if max := e.fieldLength(); e.cursor.Col > max {
		e.cursor.Col = max
	}
	if e.cursor.Row < e.scroll {
		e.scroll = e.cursor.Row
	}
}

// MoveDown moves to the next display row, clamping the column and scrolling
// the viewport down when the cursor leaves it.
func (e *Editor) MoveDown() {
	if e.cursor.Row >= len(e.table)-1 {
		return
	}
	e.cursor.Row++
	if max := e.fieldLength(); e.cursor.Col > max {
		e.cursor.Col = max
	}
	if e.viewHeight > 0 && e.cursor.Row >= e.scroll+e.viewHeight {
		e.scroll = e.cursor.Row - e.viewHeight + 1
	}
}

// MoveLeft moves one column left. At column 0 in the content field it walks
// back to the end of the nearest prior row of the same record; it never
// crosses into a different record.
func (e *Editor) MoveLeft() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
		return
	}
	if e.cursor.Field != types.FieldContent {
		return
	}
	if prev := e.table.PrevInRecord(e.cursor.Row); prev >= 0 {
		e.cursor.Row = prev
		e.cursor.Col = len(e.table[prev].Text)
	}
}

// MoveRight moves one column right. At the end of a content row it advances
// to column 0 of the immediately next display row, whether or not that row
// belongs to the same record. The asymmetry with MoveLeft is intentional.
func (e *Editor) MoveRight() {
	if e.cursor.Col < e.fieldLength() {
		e.cursor.Col++
		return
	}
	if e.cursor.Field != types.FieldContent {
		return
	}
	if e.cursor.Row < len(e.table)-1 {
		e.cursor.Row++
		e.cursor.Col = 0
		if e.viewHeight > 0 && e.cursor.Row >= e.scroll+e.viewHeight {
			e.scroll = e.cursor.Row - e.viewHeight + 1
		}
	}
}

// Home moves the cursor to column 0.
func (e *Editor) Home() {
	e.cursor.Col = 0
}

// End moves the cursor to the end of the current row's text. Content field only.
func (e *Editor) End() {
	if e.cursor.Field == types.FieldContent {
		e.cursor.Col = e.fieldLength()
	}
}

// ToggleField switches the cursor between the speaker and content fields,
// resetting the column.
func (e *Editor) ToggleField() {
	if e.cursor.Field == types.FieldContent {
		e.cursor.Field = types.FieldSpeaker
	} else {
		e.cursor.Field = types.FieldContent
	}
	e.cursor.Col = 0
}
