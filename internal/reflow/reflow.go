// Package reflow maps transcript records onto wrapped display rows. It holds
// no state of its own; the table is recomputed from the records and the wrap
// width after every mutation.
package reflow

import (
	"strings"

	"github.com/parley-edit/parley/internal/types"
)

// WrapCap is the hard ceiling on content line width, regardless of how wide
// the terminal is.
const WrapCap = 50

// Segment is one wrapped visual row: a contiguous substring of
// records[Record].Text beginning at byte offset Start. For a fixed record the
// segments are ordered by Start and cover the whole text; a break that landed
// on a space consumes that space, so rejoining segments with single spaces at
// consumed breaks reproduces the record text exactly.
type Segment struct {
	Record int
	Start  int
	Text   string
}

// Table is the full display-segment table, one entry per visual row.
type Table []Segment

// Wrap splits text into display rows at most min(width, WrapCap) columns
// wide, preferring to break at the last space that fits. A window with no
// usable space gets a hard break with no character skipped. Empty text yields
// exactly one empty segment at offset 0. The Record field of the returned
// segments is left zero; Build fills it in.
func Wrap(text string, width int) []Segment {
	maxWidth := width
	if maxWidth > WrapCap {
		maxWidth = WrapCap
	}
	if maxWidth < 1 {
		maxWidth = 1
	}

	if text == "" {
		return []Segment{{Start: 0, Text: ""}}
	}

	var segs []Segment
	start := 0
	for start < len(text) {
		remaining := len(text) - start
		if remaining <= maxWidth {
			segs = append(segs, Segment{Start: start, Text: text[start:]})
			break
		}
		window := text[start : start+maxWidth+1]
		breakIndex := strings.LastIndexByte(window, ' ')
		if breakIndex <= 0 {
			// No space, or the space leads the window and would leave an
			// empty segment: hard break.
			segs = append(segs, Segment{Start: start, Text: text[start : start+maxWidth]})
			start += maxWidth
		} else {
			segs = append(segs, Segment{Start: start, Text: text[start : start+breakIndex]})
			start += breakIndex + 1 // the space itself is consumed
		}
	}
	return segs
}

// Build wraps every record and concatenates the results into the global
// display table. Every record contributes at least one row.
func Build(records []types.Record, width int) Table {
	table := make(Table, 0, len(records))
	for i, rec := range records {
		for _, seg := range Wrap(rec.Text, width) {
			seg.Record = i
			table = append(table, seg)
		}
	}
	return table
}

// FirstOf returns the index of the first row belonging to record, or -1.
func (t Table) FirstOf(record int) int {
	for i, seg := range t {
		if seg.Record == record {
			return i
		}
	}
	return -1
}

// PrevInRecord returns the nearest row before row that belongs to the same
// record, or -1 if row starts its record.
func (t Table) PrevInRecord(row int) int {
	if row < 0 || row >= len(t) {
		return -1
	}
	record := t[row].Record
	for i := row - 1; i >= 0; i-- {
		if t[i].Record == record {
			return i
		}
	}
	return -1
}

// Resolve maps a logical (record, text offset) position to a (row, column)
// display position. If the offset lands exactly on a row's trailing edge and
// a continuation row for the same record follows, the cursor prefers the
// leading edge of the continuation. Offsets beyond the available text clamp
// to the end of the record's last row.
func (t Table) Resolve(record, offset int) (row, col int) {
	row = -1
	for i, seg := range t {
		if seg.Record != record {
			continue
		}
		if seg.Start <= offset && offset <= seg.Start+len(seg.Text) {
			row, col = i, offset-seg.Start
			break
		}
	}
	if row == -1 {
		for i := len(t) - 1; i >= 0; i-- {
			if t[i].Record == record {
				row, col = i, len(t[i].Text)
				break
			}
		}
	}
	if row == -1 {
		return 0, 0
	}
	if col == len(t[row].Text) && row+1 < len(t) && t[row+1].Record == record {
		row, col = row+1, 0
	}
	return row, col
}
