// Package discogs wraps the Discogs database API: search, release detail
// lookup, candidate ranking, and artwork download. All requests share one
// rate-limited channel so the upstream service never sees bursts.
package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/AlexEneas/discogs-tagfix/internal/config"
)

const (
	baseURL   = "https://api.discogs.com"
	searchURL = "/database/search"
	siteURL   = "https://www.discogs.com"
)

// Client is a rate-limited Discogs API client.
type Client struct {
	http    *resty.Client
	imgHTTP *resty.Client
	limiter *rate.Limiter
	token   string
}

// NewClient creates a client identified by the app's consumer key/secret.
// The key/secret pair raises the anonymous rate limit and unlocks image URLs.
func NewClient(cfg config.Config) *Client {
	auth := fmt.Sprintf("Discogs key=%s, secret=%s", cfg.ConsumerKey, cfg.ConsumerSecret)

	h := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Authorization", auth)

	// Image endpoints are slower; give them a longer timeout.
	img := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Authorization", auth)

	delay := cfg.Delay
	if delay <= 0 {
		delay = config.DefaultDelay
	}

	return &Client{
		http:    h,
		imgHTTP: img,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		token:   cfg.Token,
	}
}

// SearchResult is one raw hit from the search endpoint.
type SearchResult struct {
	ID          int        `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Year        flexString `json:"year"`
	URI         string     `json:"uri"`
	ResourceURL string     `json:"resource_url"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Record is the subset of a release/master detail we act on.
type Record struct {
	RawYear string
	Labels  []string
	Images  []Image
}

// Image describes one artwork entry on a release.
type Image struct {
	Type   string `json:"type"`
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type releaseResponse struct {
	Year   flexString `json:"year"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Images []Image `json:"images"`
}

// Search issues one search call for the given query string.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classifyNetErr(err)
	}

	var out searchResponse
	params := map[string]string{
		"q":        query,
		"type":     "release",
		"sort":     "relevance",
		"per_page": "10",
	}
	if c.token != "" {
		params["token"] = c.token
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(searchURL)
	if err != nil {
		return nil, classifyNetErr(err)
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return out.Results, nil
}

// FetchRelease fetches the detail record behind a candidate's resource URL.
func (c *Client) FetchRelease(ctx context.Context, resourceURL string) (*Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classifyNetErr(err)
	}

	var out releaseResponse
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if c.token != "" {
		req.SetQueryParam("token", c.token)
	}

	resp, err := req.Get(resourceURL)
	if err != nil {
		return nil, classifyNetErr(err)
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, fmt.Errorf("release detail: %w", err)
	}

	rec := &Record{
		RawYear: string(out.Year),
		Images:  out.Images,
	}
	for _, l := range out.Labels {
		if name := strings.TrimSpace(l.Name); name != "" {
			rec.Labels = append(rec.Labels, name)
		}
	}
	return rec, nil
}

// FetchImage downloads artwork bytes. Discogs image endpoints usually work
// with the auth header alone; a 401/403 is retried once with the token param.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classifyNetErr(err)
	}

	resp, err := c.imgHTTP.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, classifyNetErr(err)
	}
	if (resp.StatusCode() == 401 || resp.StatusCode() == 403) && c.token != "" {
		resp, err = c.imgHTTP.R().
			SetContext(ctx).
			SetQueryParam("token", c.token).
			Get(url)
		if err != nil {
			return nil, classifyNetErr(err)
		}
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("image fetch: HTTP %d", resp.StatusCode())
	}

	return resp.Body(), nil
}

// SiteURL turns a search hit's relative URI into a browsable Discogs URL.
// Hits carry the URI either slash-prefixed or as a bare "release/..." or
// "master/..." path.
func SiteURL(uri string) string {
	switch {
	case uri == "":
		return ""
	case strings.HasPrefix(uri, "/"):
		return siteURL + uri
	case strings.HasPrefix(uri, "release") || strings.HasPrefix(uri, "master"):
		return siteURL + "/" + uri
	}
	return uri
}

// flexString decodes a JSON value that may arrive as string or number.
// Search results carry year as a string; detail records carry it as an int.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
