package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// writeID3 writes year and label frames into an MP3. The year lands in both
// TDRC (v2.4) and TYER (v2.3) so older players pick it up; the label lands in
// TPUB plus a TXXX:LABEL user frame.
func writeID3(path string, p Plan) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3: %w", err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)

	if p.Year != "" {
		t.DeleteFrames("TDRC")
		t.AddTextFrame("TDRC", id3v2.EncodingUTF8, p.Year)
		t.DeleteFrames("TYER")
		t.AddTextFrame("TYER", id3v2.EncodingUTF8, p.Year)
	}
	if p.Label != "" {
		t.DeleteFrames("TPUB")
		t.AddTextFrame("TPUB", id3v2.EncodingUTF8, p.Label)
		replaceUserFrame(t, "LABEL", p.Label)
	}

	if err := t.Save(); err != nil {
		return fmt.Errorf("save id3: %w", err)
	}
	return nil
}

// replaceUserFrame rewrites the TXXX frame with the given description,
// keeping unrelated TXXX frames intact.
func replaceUserFrame(t *id3v2.Tag, desc, value string) {
	var keep []id3v2.UserDefinedTextFrame
	for _, f := range t.GetFrames("TXXX") {
		udf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udf.Description != desc {
			keep = append(keep, udf)
		}
	}
	t.DeleteFrames("TXXX")
	for _, udf := range keep {
		t.AddUserDefinedTextFrame(udf)
	}
	t.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: desc,
		Value:       value,
	})
}

// embedID3Art replaces all APIC frames with a single front cover.
func embedID3Art(path string, data []byte, mime string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3: %w", err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.DeleteFrames("APIC")
	t.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     data,
	})

	if err := t.Save(); err != nil {
		return fmt.Errorf("save id3 art: %w", err)
	}
	return nil
}
