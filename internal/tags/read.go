package tags

import (
	"os"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// ReadCurrent reads the tag values reconciliation compares against.
// Unreadable files return a zero Current rather than an error: a file with no
// readable tags is still processed via its filename.
func ReadCurrent(path string) Current {
	m, err := taglib.ReadTags(path)
	if err != nil {
		return Current{}
	}
	return Current{
		Artist: first(m, "ARTIST"),
		Title:  first(m, "TITLE"),
		Year:   firstOf(m, "DATE", "YEAR"),
		Label:  firstOf(m, "LABEL", "PUBLISHER"),
	}
}

// ReadArt returns the file's embedded front cover bytes, or nil when there is
// none or the file cannot be parsed.
func ReadArt(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil
	}
	return pic.Data
}

func first(m map[string][]string, key string) string {
	if vals := m[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func firstOf(m map[string][]string, keys ...string) string {
	for _, key := range keys {
		if v := first(m, key); v != "" {
			return v
		}
	}
	return ""
}
