package journal

import (
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

func TestJournalAppendAndAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j, err := Open[record](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	want := []record{{Id: "1", Message: "first"}, {Id: "2", Message: "second"}}
	for _, r := range want {
		if err := j.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestJournalSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	j, err := Open[record](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := j.Append(record{Id: "1", Message: "persisted"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	j.Close()

	j2, err := Open[record](path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()

	got, err := j2.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 1 || got[0].Message != "persisted" {
		t.Errorf("records after reopen = %+v", got)
	}
}

func TestJournalSkipsTornLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j, err := Open[record](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	if err := j.Append(record{Id: "1", Message: "good"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	// Simulate a torn write at the tail.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	f.WriteString(`{"id":"2","mess`)
	f.Close()

	got, err := j.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 1 || got[0].Id != "1" {
		t.Errorf("expected only the intact record, got %+v", got)
	}
}

func TestJournalCompact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j, err := Open[record](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	for _, r := range []record{{Id: "1"}, {Id: "2"}, {Id: "3"}} {
		if err := j.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	dropped, err := j.Compact(func(r record) bool { return r.Id != "2" })
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}

	got, err := j.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 2 || got[0].Id != "1" || got[1].Id != "3" {
		t.Errorf("records after compact = %+v", got)
	}

	// The journal must still accept appends after compaction.
	if err := j.Append(record{Id: "4"}); err != nil {
		t.Fatalf("Append after compact: %v", err)
	}
	got, _ = j.All()
	if len(got) != 3 || got[2].Id != "4" {
		t.Errorf("records after post-compact append = %+v", got)
	}
}

func TestJournalAllOnEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	j, err := Open[record](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	got, err := j.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %+v", got)
	}
}
