package discogs

import "sort"

// primaryBoost is added to a primary image's pixel-area rank. A secondary
// outranks a primary only when its area exceeds the primary's by more than
// the boost.
const primaryBoost = 1_000_000

// ChooseBestImage picks the artwork URL to embed: the highest-ranked image
// whose largest dimension clears minSize, falling back to the highest-ranked
// image overall. Returns "" when there is nothing usable.
func ChooseBestImage(images []Image, minSize int) string {
	type scored struct {
		rank int
		w, h int
		uri  string
	}

	var usable []scored
	for _, img := range images {
		if img.URI == "" {
			continue
		}
		rank := img.Width * img.Height
		if img.Type == "primary" {
			rank += primaryBoost
		}
		usable = append(usable, scored{rank: rank, w: img.Width, h: img.Height, uri: img.URI})
	}
	if len(usable) == 0 {
		return ""
	}

	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].rank > usable[j].rank
	})

	for _, s := range usable {
		if max(s.w, s.h) >= minSize {
			return s.uri
		}
	}
	return usable[0].uri
}
