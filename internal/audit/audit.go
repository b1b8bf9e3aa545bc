// Package audit records one outcome row per processed file into a CSV.
// Rows are flushed as they are recorded so a killed run loses nothing
// already processed.
package audit

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Header is the fixed CSV column order.
var Header = []string{
	"file", "artist", "title", "mix", "year", "label",
	"discogs_url", "match_confidence", "tag_status",
	"art_status", "art_source_url", "notes",
}

// Row is the final, flattened outcome for one file.
type Row struct {
	File            string
	Artist          string
	Title           string
	Mix             string
	Year            string
	Label           string
	DiscogsURL      string
	MatchConfidence string
	TagStatus       string
	ArtStatus       string
	ArtSourceURL    string
	Notes           string
}

func (r Row) record() []string {
	return []string{
		r.File, r.Artist, r.Title, r.Mix, r.Year, r.Label,
		r.DiscogsURL, r.MatchConfidence, r.TagStatus,
		r.ArtStatus, r.ArtSourceURL, r.Notes,
	}
}

// Writer appends rows to a CSV file, flushing after every row.
type Writer struct {
	f    *os.File
	w    *csv.Writer
	rows int
}

// NewWriter creates the output file and writes the header.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create audit csv: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write audit header: %w", err)
	}
	w.Flush()
	return &Writer{f: f, w: w}, nil
}

// Record appends one row and flushes it to disk.
func (w *Writer) Record(row Row) error {
	if err := w.w.Write(row.record()); err != nil {
		return fmt.Errorf("write audit row: %w", err)
	}
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("flush audit row: %w", err)
	}
	w.rows++
	return nil
}

// Count returns the number of rows recorded so far.
func (w *Writer) Count() int {
	return w.rows
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
