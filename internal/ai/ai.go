// internal/ai/ai.go
//
// Computer-opponent strategies for the duel engine.
//
// Three tiers share one interface and one candidate-pool pipeline:
//   - Relaxed   (easy):   filters on exact-position feedback only.
//   - Filtering (medium): filters on exact + absent feedback, ignores present.
//   - Deductive (hard):   full constraint satisfaction via the feedback
//                         scorer used as an oracle, plus letter-frequency
//                         ranking of survivors.
//
// Every tier opens with a curated first guess, never repeats a word within
// a match, and degrades gracefully: empty filter result → any unused pool
// word → reset the used set. NextGuess always returns a word of the correct
// length.
//
// A Strategy instance is bound 1:1 to a match and is not safe for concurrent
// use on its own; the game manager serializes access under the per-match
// lock. The Registry maps match ids to live strategy instances (an explicit
// service object, no package-level state).

package ai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/words"
)

// Observation is one prior guess and the verdicts it produced.
type Observation struct {
	Word     string
	Verdicts []feedback.Verdict
}

// Strategy is the common interface all skill tiers implement.
type Strategy interface {
	// Tier names the skill level this strategy plays at.
	Tier() score.Tier

	// SelectSecretWord picks the word the computer defends.
	SelectSecretWord(length int) (string, error)

	// NextGuess produces the next guess given everything observed so far.
	// Never returns an empty word for a supported length.
	NextGuess(length int, history []Observation) (string, error)

	// TurnInterval is the delay range before the computer moves.
	TurnInterval() (min, max time.Duration)

	// MaxAttempts is the guess budget for this tier; 0 means unbounded.
	MaxAttempts() int
}

// Curated openers per word length, chosen for common-letter coverage.
var openers = map[int][]string{
	4: {"tale", "rose", "lane", "rate", "iron"},
	5: {"crane", "slate", "raise", "stare", "adieu"},
}

// New constructs a strategy for the given tier.
func New(tier score.Tier) (Strategy, error) {
	b := base{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		used: make(map[string]struct{}),
	}
	switch tier {
	case score.TierRelaxed:
		return &relaxed{base: b}, nil
	case score.TierFiltering:
		return &filtering{base: b}, nil
	case score.TierDeductive:
		return &deductive{base: b}, nil
	}
	return nil, fmt.Errorf("ai: unknown tier %q", tier)
}

// TurnIntervalFor reports the delay range for a tier without building a
// full strategy. Used by the interval endpoint.
func TurnIntervalFor(tier score.Tier) (min, max time.Duration, err error) {
	s, err := New(tier)
	if err != nil {
		return 0, 0, err
	}
	min, max = s.TurnInterval()
	return min, max, nil
}

// MaxAttemptsFor reports a tier's guess budget (0 = unbounded) without
// binding a strategy to a match.
func MaxAttemptsFor(tier score.Tier) int {
	s, err := New(tier)
	if err != nil {
		return 0
	}
	return s.MaxAttempts()
}

// base carries the per-match state every tier shares.
type base struct {
	rng  *rand.Rand
	used map[string]struct{}
}

// selectSecret picks a random defended word from the pool.
func (b *base) selectSecret(length int) (string, error) {
	return words.RandomWord(length)
}

// opener returns an unused curated opener, falling back to the pool when
// the curated list is exhausted (possible only with very long matches).
func (b *base) opener(length int) (string, bool) {
	list, ok := openers[length]
	if !ok {
		return "", false
	}
	fresh := lo.Filter(list, func(w string, _ int) bool {
		_, seen := b.used[w]
		return !seen
	})
	if len(fresh) == 0 {
		return "", false
	}
	return fresh[b.rng.Intn(len(fresh))], true
}

// choose applies the shared fallback chain around a tier's filter:
// filtered unused candidates → any unused pool word → reset used set.
// pick selects from the final non-empty slice.
func (b *base) choose(length int, filtered []string, pick func([]string) string) (string, error) {
	pool := words.Pool(length)
	if len(pool) == 0 {
		return "", fmt.Errorf("ai: no word pool for length %d", length)
	}

	unused := func(list []string) []string {
		return lo.Filter(list, func(w string, _ int) bool {
			_, seen := b.used[w]
			return !seen
		})
	}

	candidates := unused(filtered)
	if len(candidates) == 0 {
		candidates = unused(pool)
	}
	if len(candidates) == 0 {
		// Entire pool exhausted within one match: start over rather than fail.
		b.used = make(map[string]struct{})
		candidates = pool
	}

	w := pick(candidates)
	b.used[w] = struct{}{}
	return w, nil
}

// markUsed records a word so it is never guessed twice in this match.
func (b *base) markUsed(w string) { b.used[w] = struct{}{} }

// Registry maps live matches to their strategy instance.
type Registry struct {
	mu      sync.Mutex
	byMatch map[string]Strategy
}

// NewRegistry constructs an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{byMatch: make(map[string]Strategy)}
}

// GetOrCreate returns the strategy bound to matchID, constructing one on
// first use (or after a process restart, when in-memory state was lost;
// the rebuilt strategy re-learns the used set from NextGuess history).
func (r *Registry) GetOrCreate(matchID string, tier score.Tier) (Strategy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byMatch[matchID]; ok {
		return s, nil
	}
	s, err := New(tier)
	if err != nil {
		return nil, err
	}
	r.byMatch[matchID] = s
	return s, nil
}

// Drop discards the strategy for a finished match.
func (r *Registry) Drop(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byMatch, matchID)
}
