package tags

import (
	"fmt"

	"github.com/go-flac/flacpicture"
	flac "github.com/go-flac/go-flac"
)

// embedFLACArt strips every existing picture block and appends one front
// cover block.
func embedFLACArt(path string, data []byte, mime string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}

	kept := f.Meta[:0]
	for _, block := range f.Meta {
		if block.Type != flac.Picture {
			kept = append(kept, block)
		}
	}
	f.Meta = kept

	pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", data, mime)
	if err != nil {
		return fmt.Errorf("build flac picture: %w", err)
	}
	block := pic.Marshal()
	f.Meta = append(f.Meta, &block)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}
