package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/AlexEneas/discogs-tagfix/internal/art"
	"github.com/AlexEneas/discogs-tagfix/internal/audit"
	"github.com/AlexEneas/discogs-tagfix/internal/config"
	"github.com/AlexEneas/discogs-tagfix/internal/discogs"
	"github.com/AlexEneas/discogs-tagfix/internal/identity"
	"github.com/AlexEneas/discogs-tagfix/internal/tags"
)

// Catalog is the slice of the Discogs client the runner needs.
type Catalog interface {
	Search(ctx context.Context, query string) ([]discogs.SearchResult, error)
	FetchRelease(ctx context.Context, resourceURL string) (*discogs.Record, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Runner processes every discovered file once, then replays rate-limited
// files through up to MaxRetryRounds retry waves.
type Runner struct {
	cfg             config.Config
	catalog         Catalog
	sink            *audit.Writer
	weights         discogs.Weights
	placeholderHash string

	// boundary calls, swappable in tests
	readCurrent func(string) tags.Current
	applyTags   func(string, tags.Plan) (tags.Action, string)
	readArt     func(string) []byte
	embedArt    func(string, []byte, string) error
	sleep       func(time.Duration)
	progress    bool
}

// New builds a Runner. The placeholder image, when configured, is hashed once
// up front.
func New(cfg config.Config, catalog Catalog, sink *audit.Writer) (*Runner, error) {
	hash, err := art.LoadPlaceholderHash(cfg.PlaceholderPath)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:             cfg,
		catalog:         catalog,
		sink:            sink,
		weights:         discogs.DefaultWeights(),
		placeholderHash: hash,
		readCurrent:     tags.ReadCurrent,
		applyTags:       tags.Apply,
		readArt:         tags.ReadArt,
		embedArt:        tags.EmbedArt,
		sleep:           time.Sleep,
		progress:        true,
	}, nil
}

// Run processes root to completion. Per-file errors land in the audit rows;
// only Fatal catalog errors abort.
func (r *Runner) Run(ctx context.Context) error {
	files, err := Discover(r.cfg.Root, r.cfg.Recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No audio files found.")
		return nil
	}
	fmt.Printf("Scanning %d file(s)...\n", len(files))

	queue := NewQueue(files)

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(files)))
	}
	for _, it := range queue.Items() {
		if err := r.processItem(ctx, queue, it); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	for round := 1; round <= MaxRetryRounds; round++ {
		queued := queue.Queued()
		if len(queued) == 0 {
			break
		}
		wait := Backoff(r.cfg.Delay, round)
		fmt.Printf("\nRetry round %d: %d file(s), waiting %s\n", round, len(queued), wait)
		r.sleep(wait)

		for _, it := range queued {
			if err := r.processItem(ctx, queue, it); err != nil {
				return err
			}
		}
	}

	// Whatever is still queued after the last round is finalized as a
	// permanent failure, never dropped.
	for _, it := range queue.Queued() {
		row := audit.Row{
			File:      it.Path,
			TagStatus: string(tags.ActionUnchanged),
			ArtStatus: string(art.StatusSkipped),
			Notes:     "permanent_failure: " + errText(it.LastErr),
		}
		queue.Done(it)
		if err := r.sink.Record(row); err != nil {
			return err
		}
	}

	fmt.Printf("\nDone. Wrote %d row(s) to %s\n", r.sink.Count(), r.cfg.OutPath)
	return nil
}

// processItem runs one attempt for one file. A Fatal catalog error is
// returned and aborts the run; retryable failures requeue the item; anything
// else finalizes it with an audit row.
func (r *Runner) processItem(ctx context.Context, queue *Queue, it *Item) error {
	queue.Start(it)

	row, err := r.processFile(ctx, it.Path)
	if err != nil {
		if errors.Is(err, discogs.ErrFatal) {
			return err
		}
		if discogs.Retryable(err) {
			queue.Requeue(it, err)
			return nil
		}
		row = audit.Row{
			File:      it.Path,
			TagStatus: string(tags.ActionUnchanged),
			ArtStatus: string(art.StatusSkipped),
			Notes:     "error: " + err.Error(),
		}
	}

	queue.Done(it)
	return r.sink.Record(row)
}

// processFile runs the full pipeline for one file. Returned errors are
// classified by the caller; a nil error means row is final.
func (r *Runner) processFile(ctx context.Context, path string) (audit.Row, error) {
	current := r.readCurrent(path)
	id := identity.Extract(current.Artist, current.Title, path)

	row := audit.Row{
		File:      path,
		Artist:    id.Artist,
		Title:     id.Title,
		Mix:       id.Mix,
		TagStatus: string(tags.ActionUnchanged),
		ArtStatus: string(art.StatusSkipped),
	}

	if id.Empty() {
		row.Notes = "not_attempted: no artist/title in tags or filename"
		return row, nil
	}

	match := discogs.MatchResult{}
	for _, q := range discogs.BuildQueries(id) {
		hits, err := r.catalog.Search(ctx, q)
		if err != nil {
			return row, err
		}
		if m := discogs.Rank(hits, id, r.weights, r.cfg.Threshold); m.Matched {
			match = m
			break
		}
	}
	if !match.Matched {
		row.Notes = "no_confident_match"
		return row, nil
	}

	cand := match.Candidate
	row.DiscogsURL = cand.URL
	row.MatchConfidence = strconv.FormatFloat(match.Confidence, 'f', 3, 64)

	rec, err := r.catalog.FetchRelease(ctx, cand.ResourceURL)
	if err != nil {
		return row, err
	}

	// The detail record's year wins; the search hit's year is the fallback.
	rawYear := rec.RawYear
	if tags.CleanYear(rawYear) == "" && cand.Year > 0 {
		rawYear = strconv.Itoa(cand.Year)
	}
	row.Year = tags.CleanYear(rawYear)
	row.Label = tags.ChooseLabel(rec.Labels)

	plan := tags.BuildPlan(current, rawYear, rec.Labels)
	action, note := r.applyTags(path, plan)
	row.TagStatus = string(action)
	if note != "" {
		appendNote(&row, "tag: "+note)
	}

	r.reconcileArt(ctx, path, rec, &row)
	return row, nil
}

// reconcileArt applies the art policy and records the outcome on the row.
// Art failures never propagate; they are per-file outcomes.
func (r *Runner) reconcileArt(ctx context.Context, path string, rec *discogs.Record, row *audit.Row) {
	if r.cfg.NoArt {
		row.ArtStatus = string(art.StatusSkipped)
		return
	}
	info, ok := tags.Lookup(path)
	if !ok || !info.ArtEmbed {
		row.ArtStatus = string(art.StatusSkipped) + ": format_unsupported"
		return
	}

	existing := r.readArt(path)
	decision := art.Decide(existing, r.cfg.MinArtSize, r.placeholderHash)
	if !decision.Replace {
		row.ArtStatus = string(art.StatusKeptExisting)
		return
	}

	imgURL := discogs.ChooseBestImage(rec.Images, r.cfg.MinArtSize)
	if imgURL == "" {
		row.ArtStatus = string(art.StatusNoImage)
		return
	}
	row.ArtSourceURL = imgURL

	data, err := r.catalog.FetchImage(ctx, imgURL)
	if err != nil {
		row.ArtStatus = string(art.StatusDownloadFailed)
		appendNote(row, "art: "+err.Error())
		return
	}
	if err := r.embedArt(path, data, art.MIMEFromURL(imgURL)); err != nil {
		row.ArtStatus = string(art.StatusWriteFailed)
		appendNote(row, "art: "+err.Error())
		return
	}
	row.ArtStatus = string(art.StatusDownloaded)
	appendNote(row, "art replaced: "+decision.Reason)
}

func appendNote(row *audit.Row, note string) {
	if row.Notes != "" {
		row.Notes += "; "
	}
	row.Notes += note
}

func errText(err error) string {
	if err == nil {
		return "retries exhausted"
	}
	return err.Error()
}
