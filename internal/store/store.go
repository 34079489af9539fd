// internal/store/store.go
//
// Opaque persistence interface for the duel server.
//
// The engine sees storage as a small key-value vocabulary: plain keys with
// optional expiry, hashes, and sorted sets (used for the leaderboard).
// Implementations may be backed by memory (dev/tests) or SQLite (durable).
//
// Transient backend failures surface as ErrUnavailable-wrapped errors so the
// collaborator boundary can retry with backoff; a missing key is ErrNotFound
// and never retried.

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key or hash field does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrUnavailable wraps transient backend failures (retryable).
var ErrUnavailable = errors.New("store: unavailable")

// ScoredMember is one entry of a sorted-set range result.
type ScoredMember struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// Store is the persistence interface for match, queue, and stats state.
type Store interface {
	// Get retrieves the value at key. ErrNotFound if missing or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// HashGet retrieves one field of a hash. ErrNotFound if missing.
	HashGet(ctx context.Context, key, field string) (string, error)

	// HashSet stores one field of a hash.
	HashSet(ctx context.Context, key, field, value string) error

	// HashGetAll retrieves every field of a hash (empty map if none).
	HashGetAll(ctx context.Context, key string) (map[string]string, error)

	// SortedSetAdd inserts or updates a member's score.
	SortedSetAdd(ctx context.Context, key, member string, score float64) error

	// SortedSetRange returns members by rank, start..stop inclusive
	// (negative stop means "through the end"), descending when desc.
	SortedSetRange(ctx context.Context, key string, start, stop int, desc bool) ([]ScoredMember, error)
}

// Retry runs fn with bounded exponential backoff while it reports a
// retryable (ErrUnavailable) failure. Player-initiated mutations must NOT be
// wrapped here; a failed guess submission is re-submitted by the caller,
// never auto-retried, to avoid duplicate guesses.
func Retry(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	var err error
	delay := base
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil || !errors.Is(err, ErrUnavailable) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
