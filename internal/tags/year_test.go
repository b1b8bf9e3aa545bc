package tags

import "testing"

func TestCleanYear(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2025//2025", "2025"},
		{`2019\2019`, "2019"},
		{"2000-01-01", "2000"},
		{"1999", "1999"},
		{"19xx", ""},
		{"", ""},
		{"0", ""},
		{"1899", ""},
		{"2101", ""},
		{"released 1987 (remaster)", "1987"},
		{"x 1850 2001", "2001"},
		{"12345", ""},
	}
	for _, c := range cases {
		if got := CleanYear(c.raw); got != c.want {
			t.Errorf("CleanYear(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCleanYear_AlwaysFourDigitsOrEmpty(t *testing.T) {
	inputs := []string{"2025//2025", "abc", "20 25", "  2024  ", "999", "20000"}
	for _, raw := range inputs {
		got := CleanYear(raw)
		if got == "" {
			continue
		}
		if len(got) != 4 {
			t.Errorf("CleanYear(%q) = %q, want 4 digits or empty", raw, got)
		}
		for _, r := range got {
			if r < '0' || r > '9' {
				t.Errorf("CleanYear(%q) = %q contains non-digit", raw, got)
			}
		}
	}
}

func TestChooseLabel(t *testing.T) {
	cases := []struct {
		labels []string
		want   string
	}{
		{[]string{"Virgin"}, "Virgin"},
		{[]string{"", "  ", "Warp", "Ninja Tune"}, "Warp"},
		{[]string{"  R&S Records "}, "R&S Records"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := ChooseLabel(c.labels); got != c.want {
			t.Errorf("ChooseLabel(%v) = %q, want %q", c.labels, got, c.want)
		}
	}
}
