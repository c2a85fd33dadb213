// internal/store/store.go
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parley-edit/parley/internal/types"
)

// ErrNoFilePath is returned by Save when the session has no file open.
var ErrNoFilePath = errors.New("no file path specified for saving")

// Store owns the ordered list of transcript records. It is the single source
// of truth for document content; everything else is recomputed from it.
// Record identity is positional: Insert and Remove shift later indices by
// exactly one.
type Store struct {
	records  []types.Record
	filePath string
	modified bool
}

// New creates a store holding a single default record, the state of a fresh
// unnamed session.
func New() *Store {
	return &Store{
		records: []types.Record{{Speaker: "Speaker", Text: ""}},
	}
}

// Load reads a tab-separated transcript into the store, replacing existing
// content. Each line is speaker<TAB>text; a line without a tab becomes a
// record with empty text. A missing file starts a fresh session bound to
// that path. Whatever parsed before a read error is kept.
func (s *Store) Load(filePath string) error {
	s.modified = false
	s.filePath = filePath

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.records = []types.Record{{Speaker: "Speaker", Text: ""}}
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	newRecords := []types.Record{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		speaker, text, found := strings.Cut(line, "\t")
		if !found {
			text = ""
		}
		newRecords = append(newRecords, types.Record{Speaker: speaker, Text: text})
	}
	scanErr := scanner.Err()

	if len(newRecords) == 0 {
		newRecords = []types.Record{{Speaker: "Speaker", Text: ""}}
	}
	s.records = newRecords

	if scanErr != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, scanErr)
	}
	return nil
}

// Bytes renders the records in the persisted format.
func (s *Store) Bytes() []byte {
	var buf bytes.Buffer
	for _, rec := range s.records {
		buf.WriteString(rec.Speaker)
		buf.WriteByte('\t')
		buf.WriteString(rec.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the records to the store's file path and clears the modified flag.
func (s *Store) Save() error {
	if s.filePath == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(s.filePath, s.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", s.filePath, err)
	}
	s.modified = false
	return nil
}

// SaveTo writes the records to an arbitrary path without touching the
// session's own path or modified flag. Autosave uses this.
func (s *Store) SaveTo(path string) error {
	if err := os.WriteFile(path, s.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	return nil
}

// SwapPath returns the autosave target: "." + base name + ".swp" next to the
// open file, or ".unnamed.swp" for a session with no file.
func (s *Store) SwapPath() string {
	if s.filePath == "" {
		return ".unnamed.swp"
	}
	base := filepath.Base(s.filePath)
	return filepath.Join(filepath.Dir(s.filePath), "."+base+".swp")
}

// FilePath returns the path of the open file, or "" for an unnamed session.
func (s *Store) FilePath() string {
	return s.filePath
}

// IsModified reports whether the store has unsaved changes.
func (s *Store) IsModified() bool {
	return s.modified
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Record returns a pointer to the record at index i for in-place edits.
// Callers mutating through it must call MarkModified.
func (s *Store) Record(i int) *types.Record {
	return &s.records[i]
}

// Records exposes the live record slice for reflow and snapshotting.
func (s *Store) Records() []types.Record {
	return s.records
}

// MarkModified flags the store as having unsaved changes.
func (s *Store) MarkModified() {
	s.modified = true
}

// Insert places rec at index i, shifting later records up by one.
func (s *Store) Insert(i int, rec types.Record) {
	s.records = append(s.records, types.Record{})
	copy(s.records[i+1:], s.records[i:])
	s.records[i] = rec
	s.modified = true
}

// Remove deletes the record at index i, shifting later records down by one.
// The store never drops below one record.
func (s *Store) Remove(i int) {
	s.records = append(s.records[:i], s.records[i+1:]...)
	if len(s.records) == 0 {
		s.records = []types.Record{{Speaker: "Speaker", Text: ""}}
	}
	s.modified = true
}

// Swap exchanges the records at i and j.
func (s *Store) Swap(i, j int) {
	s.records[i], s.records[j] = s.records[j], s.records[i]
	s.modified = true
}

// Snapshot returns an independent copy of the records. Record fields are
// strings, so copying the slice is a deep copy.
func (s *Store) Snapshot() []types.Record {
	out := make([]types.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Restore replaces the records with an independent copy of snap.
func (s *Store) Restore(snap []types.Record) {
	s.records = make([]types.Record, len(snap))
	copy(s.records, snap)
	if len(s.records) == 0 {
		s.records = []types.Record{{Speaker: "Speaker", Text: ""}}
	}
	s.modified = true
}
