// Package tags decides what year/label values to write into a file's tags and
// performs the per-format writes. Decisions are pure; writes are boundary code
// dispatched through a per-format lookup table.
package tags

import (
	"path/filepath"
	"strings"
)

// Family selects the writer used for a format.
type Family int

const (
	// FamilyID3 covers MP3: bogem/id3v2 frames, including APIC art.
	FamilyID3 Family = iota
	// FamilyTagLib covers FLAC, Ogg/Opus, WAV, AIFF and WMA year/label
	// writing through TagLib's property map.
	FamilyTagLib
	// FamilyMP4 covers the MP4 container family via go-mp4tag.
	FamilyMP4
)

// Info describes one supported format.
type Info struct {
	Family   Family
	ArtEmbed bool // format supports embedded cover art through our writers
}

// formats maps a lowercased extension to its capabilities. Extending support
// to a new format means adding a row here, not touching reconciliation logic.
var formats = map[string]Info{
	".mp3":  {Family: FamilyID3, ArtEmbed: true},
	".wav":  {Family: FamilyTagLib},
	".aif":  {Family: FamilyTagLib},
	".aiff": {Family: FamilyTagLib},
	".flac": {Family: FamilyTagLib, ArtEmbed: true},
	".ogg":  {Family: FamilyTagLib},
	".oga":  {Family: FamilyTagLib},
	".opus": {Family: FamilyTagLib},
	".wma":  {Family: FamilyTagLib},
	".m4a":  {Family: FamilyMP4, ArtEmbed: true},
	".mp4":  {Family: FamilyMP4, ArtEmbed: true},
	".alac": {Family: FamilyMP4, ArtEmbed: true},
	".aac":  {Family: FamilyMP4},
}

// Lookup returns the format info for a path. ok is false for formats without
// a tag mapping.
func Lookup(path string) (Info, bool) {
	info, ok := formats[strings.ToLower(filepath.Ext(path))]
	return info, ok
}

// Extensions returns the set of supported audio extensions, lowercased with
// the leading dot.
func Extensions() map[string]bool {
	exts := make(map[string]bool, len(formats))
	for ext := range formats {
		exts[ext] = true
	}
	return exts
}
