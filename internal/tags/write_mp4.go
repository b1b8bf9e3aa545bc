package tags

import (
	"fmt"

	mp4tag "github.com/zhaarey/go-mp4tag"
)

// writeMP4 writes year and label into an MP4-family container. The label is
// stored both as the publisher atom and a freeform LABEL field, matching how
// most taggers expect to find it.
func writeMP4(path string, p Plan) error {
	m, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open mp4: %w", err)
	}
	defer m.Close()

	t := &mp4tag.MP4Tags{Custom: map[string]string{}}
	if p.Year != "" {
		t.Date = p.Year
	}
	if p.Label != "" {
		t.Publisher = p.Label
		t.Custom["LABEL"] = p.Label
	}

	if err := m.Write(t, []string{}); err != nil {
		return fmt.Errorf("write mp4: %w", err)
	}
	return nil
}

// embedMP4Art replaces the container's cover list with a single image.
func embedMP4Art(path string, data []byte) error {
	m, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open mp4: %w", err)
	}
	defer m.Close()

	t := &mp4tag.MP4Tags{
		Pictures: []*mp4tag.MP4Picture{{Data: data}},
	}
	if err := m.Write(t, []string{}); err != nil {
		return fmt.Errorf("write mp4 art: %w", err)
	}
	return nil
}
