package audit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriter_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	rows := []Row{
		{File: "a.mp3", Artist: "Daft Punk", Title: "One More Time", Year: "2000", Label: "Virgin", TagStatus: "updated", ArtStatus: "kept_existing"},
		{File: "b.flac", Notes: "no_confident_match", TagStatus: "unchanged", ArtStatus: "skipped"},
	}
	for _, r := range rows {
		if err := w.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, want 2", w.Count())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Errorf("header = %v, want %v", records[0], Header)
	}
	if records[1][0] != "a.mp3" || records[1][4] != "2000" || records[1][5] != "Virgin" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][11] != "no_confident_match" {
		t.Errorf("row 2 notes = %q, want no_confident_match", records[2][11])
	}
}

func TestWriter_RowsFlushedImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	if err := w.Record(Row{File: "a.mp3"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// Read the file before Close: the row must already be on disk.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "a.mp3") {
		t.Errorf("row not flushed before Close; file contents: %q", data)
	}
}
