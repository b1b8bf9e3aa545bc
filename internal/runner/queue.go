// Package runner drives the per-file pipeline: identity extraction, catalog
// lookup, tag and art reconciliation, audit recording, and the retry rounds
// for rate-limited files.
package runner

import "time"

// MaxRetryRounds is how many retry waves run after the main pass.
const MaxRetryRounds = 3

// State tracks one file through the run.
type State int

const (
	StatePending State = iota
	StateInFlight
	StateQueued // waiting for a retry round
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateInFlight:
		return "in_flight"
	case StateQueued:
		return "queued_for_retry"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Item is one file's slot in the queue.
type Item struct {
	Path     string
	State    State
	Attempts int // completed attempts, successful or not
	LastErr  error
}

// Queue holds every file of the run and its retry bookkeeping. It knows
// nothing about timing; the caller decides when rounds happen.
type Queue struct {
	items []*Item
}

// NewQueue builds a queue over the files in traversal order.
func NewQueue(paths []string) *Queue {
	items := make([]*Item, len(paths))
	for i, p := range paths {
		items[i] = &Item{Path: p, State: StatePending}
	}
	return &Queue{items: items}
}

// Items returns every item in traversal order.
func (q *Queue) Items() []*Item {
	return q.items
}

// Queued returns the items awaiting a retry round, in traversal order.
func (q *Queue) Queued() []*Item {
	var out []*Item
	for _, it := range q.items {
		if it.State == StateQueued {
			out = append(out, it)
		}
	}
	return out
}

// Start marks an item as having a request in flight.
func (q *Queue) Start(it *Item) {
	it.State = StateInFlight
	it.Attempts++
}

// Done finalizes an item; it will not be retried.
func (q *Queue) Done(it *Item) {
	it.State = StateDone
	it.LastErr = nil
}

// Requeue parks an item for the next retry round.
func (q *Queue) Requeue(it *Item, err error) {
	it.State = StateQueued
	it.LastErr = err
}

// Backoff returns the wait before retry round r (1-based), growing with the
// round number on top of the configured inter-request delay.
func Backoff(delay time.Duration, round int) time.Duration {
	return delay*time.Duration(1<<round) + time.Second
}
