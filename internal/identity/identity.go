// Package identity derives the (artist, title, mix) triple used to query the
// catalog, either from a file's existing tags or from its filename.
package identity

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Source records where an Identity came from.
type Source string

const (
	SourceTags     Source = "tags"
	SourceFilename Source = "filename"
)

// Identity is the normalized lookup key for one file. Immutable once extracted.
type Identity struct {
	Artist string
	Title  string
	Mix    string
	Source Source
}

// Empty reports whether the Identity carries nothing to search for.
func (id Identity) Empty() bool {
	return id.Artist == "" && id.Title == ""
}

// String renders the identity the way it is shown in progress output.
func (id Identity) String() string {
	s := id.Artist + " - " + id.Title
	if id.Mix != "" {
		s += " (" + id.Mix + ")"
	}
	return s
}

var (
	// "Artist - Title (Mix)" and "Artist - Title". First full match wins.
	artistTitleMixRe = regexp.MustCompile(`^(.+?)\s+-\s+(.+?)\s*\(([^)]+)\)\s*$`)
	artistTitleRe    = regexp.MustCompile(`^(.+?)\s+-\s+(.+)$`)

	parenRe         = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	trailingParenRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

// Extract builds an Identity from a file's tag fields and its filename.
// Tag values win per field; the filename fills in whatever the tags leave
// blank. A trailing parenthetical in the tag title becomes the mix, and
// titles are stripped of parenthetical segments so the search string stays
// clean.
func Extract(tagArtist, tagTitle, filename string) Identity {
	artist := strings.TrimSpace(tagArtist)
	title := strings.TrimSpace(tagTitle)

	source := SourceTags
	var mix string
	if title != "" {
		mix = trailingParen(title)
	}

	if artist == "" || title == "" {
		source = SourceFilename
		if fa, ft, fmix, ok := ParseFilename(filename); ok {
			if artist == "" {
				artist = fa
			}
			if title == "" {
				title = ft
				mix = fmix
			}
		}
	}

	return Identity{
		Artist: artist,
		Title:  searchTitle(title),
		Mix:    mix,
		Source: source,
	}
}

// ParseFilename parses a filename stem against the supported patterns.
// A stem without a separator still identifies the track: it is returned as a
// title-only match. ok is false only for an empty stem.
func ParseFilename(name string) (artist, title, mix string, ok bool) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	if m := artistTitleMixRe.FindStringSubmatch(stem); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]), true
	}
	if m := artistTitleRe.FindStringSubmatch(stem); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), "", true
	}
	if stem = strings.TrimSpace(stem); stem != "" {
		return "", stem, "", true
	}
	return "", "", "", false
}

// trailingParen returns the content of a parenthetical closing the title.
func trailingParen(title string) string {
	if m := trailingParenRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// searchTitle removes parenthetical segments and collapses whitespace.
func searchTitle(title string) string {
	s := parenRe.ReplaceAllString(title, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
