package tags

import (
	"fmt"

	"go.senan.xyz/taglib"
)

// writeTagLib writes year and label through TagLib's property map. Both the
// canonical and the legacy key are set so players reading either find the
// value (DATE+YEAR, LABEL+PUBLISHER).
func writeTagLib(path string, p Plan) error {
	props := make(map[string][]string)
	if p.Year != "" {
		props["DATE"] = []string{p.Year}
		props["YEAR"] = []string{p.Year}
	}
	if p.Label != "" {
		props["LABEL"] = []string{p.Label}
		props["PUBLISHER"] = []string{p.Label}
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("taglib write: %w", err)
	}
	return nil
}
