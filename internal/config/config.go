// Package config holds the run configuration passed explicitly through every
// component entry point. There is no package-level mutable state.
package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultDelay is the minimum spacing between consecutive Discogs requests.
	DefaultDelay = 600 * time.Millisecond

	// DefaultMinArtSize is the smallest acceptable art dimension in pixels.
	DefaultMinArtSize = 500

	// DefaultThreshold is the confidence a candidate must reach to be accepted.
	DefaultThreshold = 0.6

	// DefaultOutPath is where the audit CSV is written.
	DefaultOutPath = "discogs_results.csv"
)

// Config carries everything a run needs.
type Config struct {
	Root      string // folder to scan
	Recursive bool   // descend into subfolders
	OutPath   string // audit CSV path

	Delay      time.Duration // spacing between Discogs requests
	MinArtSize int           // minimum art dimension in px
	NoArt      bool          // leave embedded art alone entirely
	Threshold  float64       // match confidence threshold

	PlaceholderPath string // known stand-in artwork to always replace

	ConsumerKey    string
	ConsumerSecret string
	Token          string // optional personal access token
	UserAgent      string
}

// Default returns a Config with all tunables at their defaults.
// Root and credentials must still be filled in by the caller.
func Default() Config {
	return Config{
		OutPath:    DefaultOutPath,
		Delay:      DefaultDelay,
		MinArtSize: DefaultMinArtSize,
		Threshold:  DefaultThreshold,
		UserAgent:  "discogs-tagfix/1.0 (+https://github.com/AlexEneas/discogs-tagfix)",
	}
}

// Validate checks the configuration before a run starts.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("config: root folder is required")
	}
	if c.ConsumerKey == "" || c.ConsumerSecret == "" {
		return errors.New("config: Discogs consumer key and secret are required")
	}
	if c.Delay < 0 {
		return fmt.Errorf("config: delay must not be negative, got %s", c.Delay)
	}
	if c.MinArtSize <= 0 {
		return fmt.Errorf("config: min art size must be positive, got %d", c.MinArtSize)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("config: threshold must be in [0,1], got %g", c.Threshold)
	}
	return nil
}
