package discogs

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/AlexEneas/discogs-tagfix/internal/identity"
)

// Weights are the scoring constants for the candidate ranker. They are
// carried as configuration rather than hard-coded into the formula.
type Weights struct {
	Artist      float64
	Title       float64
	MixBonus    float64
	MasterBonus float64
	YearBonus   float64
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Artist:      0.45,
		Title:       0.45,
		MixBonus:    0.15,
		MasterBonus: 0.2,
		YearBonus:   0.1,
	}
}

// Candidate is one catalog hit scored against an Identity.
type Candidate struct {
	ID          int
	Type        string // "master" or "release"
	Artist      string
	Title       string
	Year        int // 0 when absent or unparseable
	Score       float64
	URL         string
	ResourceURL string
}

// MatchResult is the ranker's verdict for one search call.
type MatchResult struct {
	Candidate  *Candidate
	Confidence float64
	Matched    bool
}

// Rank scores every search result against the Identity, orders them
// deterministically, and accepts the best one iff it clears the threshold.
func Rank(results []SearchResult, id identity.Identity, w Weights, threshold float64) MatchResult {
	artistN := normalize(id.Artist)
	titleN := normalize(id.Title)
	mixN := normalize(id.Mix)

	candidates := make([]Candidate, 0, len(results))

	for _, res := range results {
		resArtist, resTitle := splitHitTitle(res.Title)
		resArtistN := normalize(resArtist)
		resTitleN := normalize(resTitle)

		artistScore := similarity(artistN, resArtistN)
		if artistN != "" && resArtistN != "" &&
			(strings.Contains(resArtistN, artistN) || strings.Contains(artistN, resArtistN)) {
			artistScore = 1.0
		}
		titleScore := similarity(titleN, resTitleN)

		score := w.Artist*artistScore + w.Title*titleScore
		if mixN != "" && mixN != normalize(genericMix) && strings.Contains(normalize(res.Title), mixN) {
			score += w.MixBonus
		}
		if res.Type == "master" {
			score += w.MasterBonus
		}
		year := parseYear(string(res.Year))
		if year > 0 {
			score += w.YearBonus
		}
		score = clamp01(score)

		candidates = append(candidates, Candidate{
			ID:          res.ID,
			Type:        res.Type,
			Artist:      resArtist,
			Title:       resTitle,
			Year:        year,
			Score:       score,
			URL:         SiteURL(res.URI),
			ResourceURL: res.ResourceURL,
		})
	}

	if len(candidates) == 0 {
		return MatchResult{}
	}

	// Deterministic order: score desc, then master over release, then a
	// present year, then first-seen order (stable sort preserves it).
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if (a.Type == "master") != (b.Type == "master") {
			return a.Type == "master"
		}
		if (a.Year > 0) != (b.Year > 0) {
			return a.Year > 0
		}
		return false
	})

	best := candidates[0]
	return MatchResult{
		Candidate:  &best,
		Confidence: best.Score,
		Matched:    best.Score >= threshold,
	}
}

// splitHitTitle splits a Discogs hit title of the form "Artist - Title".
// Hits without the separator carry no artist part.
func splitHitTitle(s string) (artist, title string) {
	if i := strings.Index(s, " - "); i >= 0 {
		return s[:i], s[i+3:]
	}
	return "", s
}

var nonWordRe = regexp.MustCompile(`[^\w\s&]+`)

// normalize lowercases and strips punctuation so token comparison is stable.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// similarity blends token-set overlap with normalized edit distance, in [0,1].
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	ta := tokenSet(a)
	tb := tokenSet(b)
	inter := 0
	for tok := range ta {
		if tb[tok] {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(inter) / float64(union)
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	edit := 1.0 - float64(fuzzy.LevenshteinDistance(a, b))/float64(maxLen)

	if edit > jaccard {
		return edit
	}
	return jaccard
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// parseYear returns a plausible release year, or 0.
func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 || y > 2100 {
		return 0
	}
	return y
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
