package discogs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors classifying catalog failures. RateLimited and Transient are
// retried through the retry queue; Fatal aborts the whole run.
var (
	ErrRateLimited = errors.New("discogs: rate limited")
	ErrTransient   = errors.New("discogs: transient error")
	ErrFatal       = errors.New("discogs: authorization failed")
)

// Retryable reports whether err should be queued for a later retry round.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTransient)
}

// classifyStatus maps an HTTP status to the error taxonomy.
// A nil return means the status is not an error.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w (429)", ErrRateLimited)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %d): check consumer key/secret", ErrFatal, status)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w (HTTP %d)", ErrTransient, status)
	case status >= http.StatusBadRequest:
		return fmt.Errorf("discogs: HTTP %d", status)
	}
	return nil
}

// classifyNetErr wraps transport-level failures, timeouts included, as
// transient so they feed the retry queue instead of aborting the run.
func classifyNetErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}
