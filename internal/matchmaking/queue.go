// internal/matchmaking/queue.go
//
// Matchmaking for human-vs-human duels.
//
// One independent FIFO queue per word length. Enqueue purges expired
// entries, then scans for the oldest eligible opponent: if one is found the
// pair is returned for match construction (turn holder = the player who was
// already queued); otherwise the entry is appended and the caller keeps
// polling. Entries expire after 60 s so an abandoned tab never pairs with a
// live player.
//
// A player already bound to an active match must never be paired again; the
// Binder callback lets the queue detect and evict such entries, retrying
// the scan once after an eviction.

package matchmaking

import (
	"context"
	"sync"
	"time"
)

// QueueTimeout is the maximum age of a waiting entry.
const QueueTimeout = 60 * time.Second

// Entry is one waiting matchmaking request.
type Entry struct {
	PlayerID    string    `json:"playerId"`
	DisplayName string    `json:"displayName"`
	SecretWord  string    `json:"secretWord"`
	WordLength  int       `json:"wordLength"`
	EnqueuedAt  time.Time `json:"enqueuedAt"`
}

// Binder reports whether a player is still bound to an active match, and
// evicts stale bindings. Implemented by the game manager.
type Binder interface {
	// BoundToActiveMatch returns true if the player currently belongs to an
	// active match. Stale bindings (finished or missing matches) are evicted
	// as a side effect and report false.
	BoundToActiveMatch(ctx context.Context, playerID string) bool
}

// Result of an Enqueue call.
type Result struct {
	Matched  bool
	Opponent *Entry // the earlier-queued player; nil when waiting
}

// Status summarizes one queue for polling clients.
type Status struct {
	Count         int   `json:"count"`
	AverageWaitMs int64 `json:"averageWaitMs"`
}

// Queue holds the per-length waiting lists.
type Queue struct {
	mu     sync.Mutex
	queues map[int][]*Entry
	binder Binder
	now    func() time.Time
}

// New constructs a Queue. binder may be nil (no active-match screening).
func New(binder Binder) *Queue {
	return &Queue{
		queues: make(map[int][]*Entry),
		binder: binder,
		now:    time.Now,
	}
}

// Enqueue registers a waiting player, pairing immediately when an eligible
// opponent is already queued. The same player re-enqueueing refreshes their
// existing entry rather than producing a duplicate.
func (q *Queue) Enqueue(ctx context.Context, e Entry) Result {
	now := q.now()
	e.EnqueuedAt = now

	q.mu.Lock()
	defer q.mu.Unlock()

	q.purgeLocked(e.WordLength, now)

	// Drop any previous entry for the same player; polling clients can
	// double-enqueue.
	q.removeLocked(e.PlayerID, e.WordLength)

	// Scan FIFO for the oldest eligible opponent. A candidate bound to an
	// active match is stale; evict it and keep scanning.
	list := q.queues[e.WordLength]
	for i := 0; i < len(list); {
		cand := list[i]
		if cand.PlayerID == e.PlayerID {
			i++
			continue
		}
		if now.Sub(cand.EnqueuedAt) > QueueTimeout {
			list = append(list[:i], list[i+1:]...)
			continue
		}
		if q.binder != nil && q.binder.BoundToActiveMatch(ctx, cand.PlayerID) {
			list = append(list[:i], list[i+1:]...)
			continue
		}
		// Matched: consume the candidate.
		list = append(list[:i], list[i+1:]...)
		q.queues[e.WordLength] = list
		return Result{Matched: true, Opponent: cand}
	}
	q.queues[e.WordLength] = append(list, &e)
	return Result{Matched: false}
}

// Leave removes a player's entry if present. Idempotent.
func (q *Queue) Leave(playerID string, wordLength int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(playerID, wordLength)
}

// Status reports the current depth and average wait of one queue.
func (q *Queue) Status(wordLength int) Status {
	now := q.now()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.purgeLocked(wordLength, now)

	list := q.queues[wordLength]
	st := Status{Count: len(list)}
	if len(list) == 0 {
		return st
	}
	var total time.Duration
	for _, e := range list {
		total += now.Sub(e.EnqueuedAt)
	}
	st.AverageWaitMs = (total / time.Duration(len(list))).Milliseconds()
	return st
}

// Waiting reports whether the player currently has a live entry.
func (q *Queue) Waiting(playerID string, wordLength int) bool {
	now := q.now()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.purgeLocked(wordLength, now)
	for _, e := range q.queues[wordLength] {
		if e.PlayerID == playerID {
			return true
		}
	}
	return false
}

// purgeLocked drops entries older than the queue timeout.
func (q *Queue) purgeLocked(wordLength int, now time.Time) {
	list := q.queues[wordLength]
	kept := list[:0]
	for _, e := range list {
		if now.Sub(e.EnqueuedAt) <= QueueTimeout {
			kept = append(kept, e)
		}
	}
	q.queues[wordLength] = kept
}

// removeLocked drops a player's entry from one queue if present.
func (q *Queue) removeLocked(playerID string, wordLength int) {
	list := q.queues[wordLength]
	for i, e := range list {
		if e.PlayerID == playerID {
			q.queues[wordLength] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
