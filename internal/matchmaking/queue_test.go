package matchmaking

import (
	"context"
	"testing"
	"time"
)

func newTestQueue(binder Binder) (*Queue, *time.Time) {
	q := New(binder)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }
	return q, &now
}

func entry(playerID string, length int) Entry {
	return Entry{PlayerID: playerID, DisplayName: playerID, SecretWord: "crane", WordLength: length}
}

func TestEnqueue_PairsFIFO(t *testing.T) {
	ctx := context.Background()
	q, now := newTestQueue(nil)

	if res := q.Enqueue(ctx, entry("alice", 5)); res.Matched {
		t.Fatal("first entry should wait")
	}
	*now = now.Add(2 * time.Second)
	res := q.Enqueue(ctx, entry("bob", 5))
	if !res.Matched {
		t.Fatal("bob should pair with waiting alice")
	}
	if res.Opponent.PlayerID != "alice" {
		t.Errorf("paired with %q, want alice", res.Opponent.PlayerID)
	}
	// Queue drained: the next arrival waits again.
	if res := q.Enqueue(ctx, entry("carol", 5)); res.Matched {
		t.Error("carol should wait in the drained queue")
	}
}

func TestEnqueue_DifferentLengthsNeverPair(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(nil)
	q.Enqueue(ctx, entry("alice", 4))
	if res := q.Enqueue(ctx, entry("bob", 5)); res.Matched {
		t.Error("entries of different word lengths must not pair")
	}
}

func TestEnqueue_SelfNeverPairs(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(nil)
	q.Enqueue(ctx, entry("alice", 5))
	if res := q.Enqueue(ctx, entry("alice", 5)); res.Matched {
		t.Error("a player must not be paired with themselves")
	}
	if st := q.Status(5); st.Count != 1 {
		t.Errorf("re-enqueue duplicated the entry: count=%d", st.Count)
	}
}

func TestEnqueue_ExpiredEntriesPurged(t *testing.T) {
	ctx := context.Background()
	q, now := newTestQueue(nil)
	q.Enqueue(ctx, entry("alice", 5))
	*now = now.Add(QueueTimeout + time.Second)
	if res := q.Enqueue(ctx, entry("bob", 5)); res.Matched {
		t.Error("expired entry must not pair")
	}
	if st := q.Status(5); st.Count != 1 {
		t.Errorf("queue count = %d, want only bob", st.Count)
	}
}

type fakeBinder struct {
	active map[string]bool
}

func (f *fakeBinder) BoundToActiveMatch(ctx context.Context, playerID string) bool {
	return f.active[playerID]
}

func TestEnqueue_SkipsPlayersBoundToActiveMatch(t *testing.T) {
	ctx := context.Background()
	binder := &fakeBinder{active: map[string]bool{"alice": true}}
	q, now := newTestQueue(binder)

	q.Enqueue(ctx, entry("alice", 5))
	*now = now.Add(time.Second)
	q.Enqueue(ctx, entry("bob", 5))
	*now = now.Add(time.Second)

	res := q.Enqueue(ctx, entry("carol", 5))
	if !res.Matched || res.Opponent.PlayerID != "bob" {
		t.Fatalf("expected carol to pair with bob, got %+v", res)
	}
	// Alice's stale entry was evicted during the scan.
	if q.Waiting("alice", 5) {
		t.Error("entry for actively-bound player should have been evicted")
	}
}

func TestLeave_Idempotent(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(nil)
	q.Enqueue(ctx, entry("alice", 5))
	q.Leave("alice", 5)
	q.Leave("alice", 5) // no-op
	if st := q.Status(5); st.Count != 0 {
		t.Errorf("count after leave = %d, want 0", st.Count)
	}
}

func TestStatus_AverageWait(t *testing.T) {
	ctx := context.Background()
	q, now := newTestQueue(nil)
	q.Enqueue(ctx, entry("alice", 4))
	*now = now.Add(10 * time.Second)
	q.Enqueue(ctx, entry("bob", 4))
	*now = now.Add(10 * time.Second)

	st := q.Status(4)
	if st.Count != 2 {
		t.Fatalf("count = %d, want 2", st.Count)
	}
	// alice waited 20 s, bob 10 s → average 15 s.
	if st.AverageWaitMs != 15000 {
		t.Errorf("averageWaitMs = %d, want 15000", st.AverageWaitMs)
	}
}
