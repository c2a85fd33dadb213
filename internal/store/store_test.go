package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parley-edit/parley/internal/types"
)

func TestNewSeedsDefaultRecord(t *testing.T) {
	s := New()
	if s.Len() != 1 {
		t.Fatalf("new store holds %d records, want 1", s.Len())
	}
	rec := s.Record(0)
	if rec.Speaker != "Speaker" || rec.Text != "" {
		t.Errorf("default record = %+v, want {Speaker \"\"}", *rec)
	}
	if s.IsModified() {
		t.Error("fresh store reports modified")
	}
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	content := "Alice\tHello there.\nBob\tHi!\nAlice\t\n"
	path := filepath.Join(t.TempDir(), "session.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("loaded %d records, want 3", s.Len())
	}
	if rec := s.Record(1); rec.Speaker != "Bob" || rec.Text != "Hi!" {
		t.Errorf("record 1 = %+v", *rec)
	}
	if got := string(s.Bytes()); got != content {
		t.Errorf("Bytes() = %q, want the original file content %q", got, content)
	}

	outPath := filepath.Join(t.TempDir(), "copy.tsv")
	if err := s.SaveTo(outPath); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != content {
		t.Errorf("saved file = %q, want %q", written, content)
	}
}

func TestLoadLineWithoutTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.tsv")
	if err := os.WriteFile(path, []byte("JustASpeaker\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := s.Record(0)
	if rec.Speaker != "JustASpeaker" || rec.Text != "" {
		t.Errorf("tab-less line parsed to %+v, want speaker only", *rec)
	}
}

func TestLoadMissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.tsv")
	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if s.Len() != 1 || s.Record(0).Speaker != "Speaker" {
		t.Errorf("missing file should yield one default record, got %d: %+v", s.Len(), s.Records())
	}
	if s.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q (session bound to the missing path)", s.FilePath(), path)
	}
}

func TestLoadEmptyFileYieldsDefaultRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	s := New()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("empty file loaded to %d records, want 1", s.Len())
	}
}

func TestSaveWithoutPath(t *testing.T) {
	s := New()
	if err := s.Save(); err != ErrNoFilePath {
		t.Errorf("Save on unnamed session = %v, want ErrNoFilePath", err)
	}
}

func TestSaveClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.tsv")
	s := New()
	if err := s.Load(path); err != nil {
		t.Fatal(err)
	}
	s.Record(0).Text = "edited"
	s.MarkModified()
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.IsModified() {
		t.Error("store still modified after Save")
	}
}

func TestSwapPath(t *testing.T) {
	dir := t.TempDir()
	s := New()
	if err := s.Load(filepath.Join(dir, "session.tsv")); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, ".session.tsv.swp")
	if got := s.SwapPath(); got != want {
		t.Errorf("SwapPath() = %q, want %q", got, want)
	}

	if got := New().SwapPath(); got != ".unnamed.swp" {
		t.Errorf("unnamed SwapPath() = %q, want \".unnamed.swp\"", got)
	}
}

func TestInsertRemoveSwap(t *testing.T) {
	s := New()
	s.Record(0).Text = "first"
	s.Insert(1, types.Record{Speaker: "B", Text: "second"})
	s.Insert(1, types.Record{Speaker: "C", Text: "middle"})

	wantOrder := []string{"first", "middle", "second"}
	for i, want := range wantOrder {
		if got := s.Record(i).Text; got != want {
			t.Errorf("after inserts, record %d = %q, want %q", i, got, want)
		}
	}

	s.Swap(0, 2)
	if s.Record(0).Text != "second" || s.Record(2).Text != "first" {
		t.Errorf("after Swap(0,2): %q / %q", s.Record(0).Text, s.Record(2).Text)
	}

	s.Remove(1)
	if s.Len() != 2 {
		t.Fatalf("after Remove, %d records, want 2", s.Len())
	}
	if s.Record(1).Text != "first" {
		t.Errorf("record 1 after Remove = %q, want %q", s.Record(1).Text, "first")
	}
	if !s.IsModified() {
		t.Error("mutations did not set modified")
	}
}

func TestRemoveNeverEmptiesStore(t *testing.T) {
	s := New()
	s.Remove(0)
	if s.Len() != 1 {
		t.Fatalf("store dropped to %d records", s.Len())
	}
	if rec := s.Record(0); rec.Speaker != "Speaker" || rec.Text != "" {
		t.Errorf("reseeded record = %+v", *rec)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := New()
	s.Record(0).Text = "original"
	snap := s.Snapshot()

	s.Record(0).Text = "changed"
	if snap[0].Text != "original" {
		t.Error("snapshot aliased live record memory")
	}

	s.Restore(snap)
	if s.Record(0).Text != "original" {
		t.Errorf("after Restore, text = %q", s.Record(0).Text)
	}
	snap[0].Text = "tampered"
	if s.Record(0).Text != "original" {
		t.Error("restored records alias the snapshot slice")
	}
}
