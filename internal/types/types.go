// internal/types/types.go
package types

// Record is one (speaker, text) pair: the logical unit of transcript content.
// Identity is positional; inserting or removing a record shifts the indices
// of everything after it.
type Record struct {
	Speaker string
	Text    string
}

// Field identifies which editable part of a record the cursor occupies.
type Field int

const (
	FieldContent Field = iota
	FieldSpeaker
)

func (f Field) String() string {
	if f == FieldSpeaker {
		return "speaker"
	}
	return "content"
}

// Cursor addresses a position within the wrapped display table.
// Row is the 0-based display row (index into the segment table),
// Col the 0-based offset within the active field's visible text.
type Cursor struct {
	Row   int
	Field Field
	Col   int
}
