package tags

import "fmt"

// EmbedArt writes cover art into a file, replacing any existing art.
// The caller guards on Lookup().ArtEmbed.
func EmbedArt(path string, data []byte, mime string) error {
	info, ok := Lookup(path)
	if !ok || !info.ArtEmbed {
		return fmt.Errorf("art embedding unsupported for %s", path)
	}

	switch info.Family {
	case FamilyID3:
		return embedID3Art(path, data, mime)
	case FamilyMP4:
		return embedMP4Art(path, data)
	case FamilyTagLib:
		// Only FLAC in this family embeds art.
		return embedFLACArt(path, data, mime)
	}
	return fmt.Errorf("art embedding unsupported for %s", path)
}
