package discogs

import (
	"strings"

	"github.com/AlexEneas/discogs-tagfix/internal/identity"
)

// genericMix names a mix segment that adds nothing to a search.
const genericMix = "original mix"

// BuildQueries produces the query-string variations for an Identity, in
// priority order. Variations are consumed one at a time until a confident
// match is found or the list is exhausted.
func BuildQueries(id identity.Identity) []string {
	var queries []string
	seen := make(map[string]bool)

	add := func(parts ...string) {
		q := cleanQuery(strings.Join(parts, " "))
		if q == "" || seen[q] {
			return
		}
		seen[q] = true
		queries = append(queries, q)
	}

	if id.Artist != "" && id.Title != "" {
		if id.Mix != "" && !strings.EqualFold(id.Mix, genericMix) {
			add(id.Artist, id.Title, id.Mix)
		}
		add(id.Artist, id.Title)
	}
	// Fallback covers the artist-less case; for full identities it collapses
	// into the variation above and is deduplicated.
	add(id.Artist, id.Title)

	return queries
}

// cleanQuery ASCII-folds a query and collapses runs of whitespace.
func cleanQuery(q string) string {
	q = identity.FoldASCII(q)
	return strings.Join(strings.Fields(q), " ")
}
