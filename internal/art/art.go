// Package art decides whether a file's embedded cover must be replaced:
// missing art, undersized art, or a known placeholder image all trigger a
// replacement attempt. Fetching and embedding are left to the caller.
package art

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Status is the art outcome recorded in the audit row.
type Status string

const (
	StatusDownloaded     Status = "downloaded"
	StatusKeptExisting   Status = "kept_existing"
	StatusNoImage        Status = "no_image_available"
	StatusWriteFailed    Status = "write_failed"
	StatusDownloadFailed Status = "download_failed"
	StatusSkipped        Status = "skipped"
)

// Decision says whether existing art must be replaced and why.
type Decision struct {
	Replace bool
	Reason  string // "missing", "too small (WxH)", "placeholder"
}

// Decide applies the replacement policy to a file's embedded art bytes.
// A placeholder hash match always wins, regardless of dimensions.
func Decide(existing []byte, minSize int, placeholderHash string) Decision {
	if len(existing) == 0 {
		return Decision{Replace: true, Reason: "missing"}
	}
	if placeholderHash != "" && HashBytes(existing) == placeholderHash {
		return Decision{Replace: true, Reason: "placeholder"}
	}

	w, h := dimensions(existing)
	if max(w, h) < minSize {
		return Decision{Replace: true, Reason: fmt.Sprintf("too small (%dx%d)", w, h)}
	}
	return Decision{}
}

// HashBytes returns the MD5 hex digest used for placeholder comparison.
func HashBytes(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// LoadPlaceholderHash hashes the configured placeholder image file.
// An empty path disables placeholder matching.
func LoadPlaceholderHash(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read placeholder: %w", err)
	}
	return HashBytes(data), nil
}

// MIMEFromURL guesses the image MIME type from a URL's extension.
func MIMEFromURL(url string) string {
	if strings.HasSuffix(strings.ToLower(url), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// dimensions decodes just the image header. Undecodable art reads as 0x0,
// which the policy treats as undersized.
func dimensions(data []byte) (w, h int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
