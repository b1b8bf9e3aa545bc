package tags

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// CleanYear extracts a clean "YYYY" from raw catalog year values like 2025,
// "2025//2025", `2019\2019` or "1999-03-01". Returns "" when no plausible
// 4-digit year is present.
func CleanYear(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// Normalize backslash-doubled values like "2019\2019".
	s = strings.ReplaceAll(s, `\`, "/")
	if head, _, found := strings.Cut(s, "/"); found {
		if y := validYear(head); y != "" {
			return y
		}
	}
	if y := validYear(s); y != "" {
		return y
	}

	// Fall back to the first standalone digit run that is a plausible year.
	// Runs are maximal, so "12345" is one 5-digit run and never matches.
	for _, run := range digitRunRe.FindAllString(s, -1) {
		if y := validYear(run); y != "" {
			return y
		}
	}
	return ""
}

// validYear returns s when it is exactly four digits in [1900, 2100].
func validYear(s string) string {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return ""
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2100 {
		return ""
	}
	return s
}

// ChooseLabel picks the first non-empty label in catalog order, trimmed.
func ChooseLabel(labels []string) string {
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}
