package runner

import (
	"errors"
	"testing"
	"time"
)

func TestQueueLifecycle(t *testing.T) {
	q := NewQueue([]string{"a.mp3", "b.mp3"})
	items := q.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.State != StatePending {
			t.Errorf("%s state = %v, want pending", it.Path, it.State)
		}
	}

	a, b := items[0], items[1]

	q.Start(a)
	if a.State != StateInFlight || a.Attempts != 1 {
		t.Errorf("after Start: state=%v attempts=%d", a.State, a.Attempts)
	}
	q.Done(a)
	if a.State != StateDone {
		t.Errorf("after Done: state=%v", a.State)
	}

	boom := errors.New("boom")
	q.Start(b)
	q.Requeue(b, boom)
	if b.State != StateQueued || b.LastErr != boom {
		t.Errorf("after Requeue: state=%v err=%v", b.State, b.LastErr)
	}

	queued := q.Queued()
	if len(queued) != 1 || queued[0] != b {
		t.Fatalf("Queued = %v", queued)
	}

	q.Start(b)
	if b.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", b.Attempts)
	}
	q.Done(b)
	if got := q.Queued(); len(got) != 0 {
		t.Errorf("Queued after all done = %v", got)
	}
}

func TestQueuedPreservesTraversalOrder(t *testing.T) {
	q := NewQueue([]string{"a", "b", "c"})
	for _, it := range q.Items() {
		q.Start(it)
		q.Requeue(it, errors.New("x"))
	}
	queued := q.Queued()
	for i, want := range []string{"a", "b", "c"} {
		if queued[i].Path != want {
			t.Errorf("queued[%d] = %q, want %q", i, queued[i].Path, want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePending, "pending"},
		{StateInFlight, "in_flight"},
		{StateQueued, "queued_for_retry"},
		{StateDone, "done"},
		{State(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.state.String(); got != test.want {
			t.Errorf("State(%d).String() = %q, want %q", test.state, got, test.want)
		}
	}
}

func TestBackoff(t *testing.T) {
	delay := 600 * time.Millisecond
	tests := []struct {
		round int
		want  time.Duration
	}{
		{1, 1200*time.Millisecond + time.Second},
		{2, 2400*time.Millisecond + time.Second},
		{3, 4800*time.Millisecond + time.Second},
	}
	for _, test := range tests {
		if got := Backoff(delay, test.round); got != test.want {
			t.Errorf("Backoff(round %d) = %v, want %v", test.round, got, test.want)
		}
	}
}
