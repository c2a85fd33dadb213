// internal/core/edit.go
package core

import (
	"fmt"

	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/types"
)

// Every mutating operation follows the same shape: push an undo snapshot,
// mutate the store, reflow, resync the cursor. An operation that refuses
// (boundary move, oversized join) reports a status and leaves the records
// untouched.

// InsertRune splices a printable character into the active field at the
// cursor. The speaker field is never wrapped, so only content inserts need a
// cursor resync through the new table.
func (e *Editor) InsertRune(r rune) {
	if len(e.table) == 0 {
		return
	}
	e.history.Push(e.snapshot())

	seg := e.CurrentSegment()
	rec := e.store.Record(seg.Record)

	if e.cursor.Field == types.FieldSpeaker {
		col := e.cursor.Col
		if col > len(rec.Speaker) {
			col = len(rec.Speaker)
		}
		rec.Speaker = rec.Speaker[:col] + string(r) + rec.Speaker[col:]
		e.cursor.Col = col + 1
		e.store.MarkModified()
		e.Reflow()
		return
	}

	abs := seg.Start + e.cursor.Col
	rec.Text = rec.Text[:abs] + string(r) + rec.Text[abs:]
	e.store.MarkModified()
	e.Reflow()
	e.resolveContent(seg.Record, abs+1)
}

// Backspace handles the four ordered cases: speaker-field delete, the
// wrap-boundary navigation shortcut, the join with the previous record at a
// true record start, and the plain content delete.
func (e *Editor) Backspace() {
	if len(e.table) == 0 {
		return
	}
	e.history.Push(e.snapshot())

	seg := e.CurrentSegment()
	rec := e.store.Record(seg.Record)

	if e.cursor.Field == types.FieldSpeaker {
		if e.cursor.Col > 0 && e.cursor.Col <= len(rec.Speaker) {
			rec.Speaker = rec.Speaker[:e.cursor.Col-1] + rec.Speaker[e.cursor.Col:]
			e.cursor.Col--
			e.store.MarkModified()
		}
		e.Reflow()
		return
	}

	abs := seg.Start + e.cursor.Col

	// At the start of a wrap continuation: no character is deleted, the
	// cursor just crosses the wrap boundary backwards.
	if e.cursor.Col == 0 && seg.Start > 0 {
		if prev := e.table.PrevInRecord(e.cursor.Row); prev >= 0 {
			e.cursor.Row = prev
			e.cursor.Col = len(e.table[prev].Text)
		}
		return
	}

	// At the true start of a record's text: join with the previous record,
	// unless the combined text would be unreasonably long to wrap.
	if e.cursor.Col == 0 && seg.Start == 0 && seg.Record > 0 {
		prev := e.store.Record(seg.Record - 1)
		if len(prev.Text)+len(rec.Text) <= config.MergeWrapFactor*e.ContentWidth() {
			prevLen := len(prev.Text)
			prev.Text += rec.Text
			e.store.Remove(seg.Record)
			e.Reflow()
			e.resolveContent(seg.Record-1, prevLen)
		}
		return
	}

	if abs > 0 {
		rec.Text = rec.Text[:abs-1] + rec.Text[abs:]
		e.store.MarkModified()
		e.Reflow()
		e.resolveContent(seg.Record, abs-1)
	}
}

// splitRecordAt cuts the record's text at offset, keeping the prefix and
// inserting a new record with the same speaker and the suffix immediately
// after. Callers reflow.
func (e *Editor) splitRecordAt(record, offset int) {
	rec := e.store.Record(record)
	suffix := rec.Text[offset:]
	rec.Text = rec.Text[:offset]
	e.store.Insert(record+1, types.Record{Speaker: rec.Speaker, Text: suffix})
}

// Split divides the current record at the cursor into two records with the
// same speaker and leaves the cursor at the start of the new one. Valid only
// in the content field.
func (e *Editor) Split() string {
	if len(e.table) == 0 {
		return ""
	}
	if e.cursor.Field != types.FieldContent {
		return "Can only split when cursor is in content"
	}
	e.history.Push(e.snapshot())

	seg := e.CurrentSegment()
	abs := seg.Start + e.cursor.Col
	e.splitRecordAt(seg.Record, abs)
	e.Reflow()
	e.resolveContent(seg.Record+1, 0)
	return fmt.Sprintf("Split entry at offset %d", abs)
}

// MoveEntry swaps the record under the cursor with its neighbor in the given
// direction (-1 up, +1 down). A cursor on a wrap continuation first splits
// the record there so the move carries the trailing fragment on its own.
// At a boundary the order is left unchanged and a status reported.
func (e *Editor) MoveEntry(delta int) string {
	if len(e.table) == 0 || (delta != -1 && delta != 1) {
		return ""
	}
	e.history.Push(e.snapshot())

	seg := e.CurrentSegment()
	record := seg.Record

	if seg.Start > 0 {
		e.splitRecordAt(record, seg.Start)
		record++
		e.Reflow()
		e.resolveContent(record, 0)
	}

	if delta < 0 && record == 0 {
		return "Already at the top"
	}
	if delta > 0 && record == e.store.Len()-1 {
		return "Already at the bottom"
	}

	e.store.Swap(record, record+delta)
	e.Reflow()
	if row := e.table.FirstOf(record + delta); row >= 0 {
		e.cursor.Row = row
	}
	if max := e.fieldLength(); e.cursor.Col > max {
		e.cursor.Col = max
	}
	e.scrollToCursor()

	if delta < 0 {
		return "Moved entry up"
	}
	return "Moved entry down"
}

// ClearSpeaker empties the speaker field of the record under the cursor.
func (e *Editor) ClearSpeaker() {
	if len(e.table) == 0 {
		return
	}
	e.history.Push(e.snapshot())

	e.store.Record(e.CurrentRecord()).Speaker = ""
	e.cursor.Col = 0
	e.store.MarkModified()
	e.Reflow()
}

// Undo pops the most recent snapshot pair and restores records, cursor and
// viewport from it.
func (e *Editor) Undo() string {
	snap, ok := e.history.Undo()
	if !ok {
		return "Nothing to undo"
	}
	e.store.Restore(snap.Records)
	e.cursor = snap.Cursor
	e.Reflow()
	// Reflow drags the viewport to the cursor; the snapshot's scroll wins,
	// even when it leaves the cursor off screen.
	e.scroll = snap.Scroll
	return "Undo successful"
}
