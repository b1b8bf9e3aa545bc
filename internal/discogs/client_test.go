package discogs

import "testing"

func TestSiteURL(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"/master/1234", "https://www.discogs.com/master/1234"},
		{"/release/5678-Artist-Title", "https://www.discogs.com/release/5678-Artist-Title"},
		{"master/1234", "https://www.discogs.com/master/1234"},
		{"release/5678-Artist-Title", "https://www.discogs.com/release/5678-Artist-Title"},
		{"https://www.discogs.com/release/5678", "https://www.discogs.com/release/5678"},
		{"", ""},
	}
	for _, c := range cases {
		if got := SiteURL(c.uri); got != c.want {
			t.Errorf("SiteURL(%q) = %q, want %q", c.uri, got, c.want)
		}
	}
}
