// internal/store/merge.go
package store

import (
	"strings"

	"github.com/parley-edit/parley/internal/config"
)

// noJoinSpace lists the trailing characters after which the merge does not
// insert a joining space.
const noJoinSpace = ".!,:;"

// Normalize folds consecutive same-speaker records together. It runs once at
// load time, never after edits. Two adjacent records merge when the speakers
// match, neither text contains a square bracket, and the combined length
// (with a joining space) stays within the merge cap. The same position is
// re-examined after a merge, so runs of short records cascade into one.
// Returns the number of merges performed.
func (s *Store) Normalize() int {
	merged := 0
	i := 0
	for i < len(s.records)-1 {
		cur := &s.records[i]
		next := s.records[i+1]

		if cur.Speaker == next.Speaker &&
			!strings.ContainsAny(cur.Text, "[]") &&
			!strings.ContainsAny(next.Text, "[]") &&
			len(cur.Text)+1+len(next.Text) <= config.MergeCap {

			if cur.Text != "" && !strings.ContainsRune(noJoinSpace, rune(cur.Text[len(cur.Text)-1])) {
				cur.Text += " "
			}
			cur.Text += next.Text
			s.records = append(s.records[:i+1], s.records[i+2:]...)
			merged++
			continue // re-examine the same position
		}
		i++
	}
	if merged > 0 {
		s.modified = true
	}
	return merged
}
