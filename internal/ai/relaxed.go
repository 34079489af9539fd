// internal/ai/relaxed.go
//
// Relaxed (easy) tier: only exact-position feedback constrains the pool, so
// the computer keeps guessing words that contradict present/absent evidence.
// Unbounded attempts, short thinking delay.

package ai

import (
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/words"
)

type relaxed struct {
	base
}

func (s *relaxed) Tier() score.Tier { return score.TierRelaxed }

func (s *relaxed) SelectSecretWord(length int) (string, error) {
	return s.selectSecret(length)
}

// Fast interval: this tier "knows less", so it answers quickly.
func (s *relaxed) TurnInterval() (min, max time.Duration) {
	return 1 * time.Second, 2 * time.Second
}

func (s *relaxed) MaxAttempts() int { return 0 }

func (s *relaxed) NextGuess(length int, history []Observation) (string, error) {
	for _, obs := range history {
		s.markUsed(obs.Word)
	}
	if len(history) == 0 {
		if w, ok := s.opener(length); ok {
			s.markUsed(w)
			return w, nil
		}
	}
	filtered := lo.Filter(words.Pool(length), func(cand string, _ int) bool {
		return matchesExactConstraints(cand, history)
	})
	return s.choose(length, filtered, func(cands []string) string {
		return cands[s.rng.Intn(len(cands))]
	})
}

// matchesExactConstraints rejects a candidate if any position ever marked
// exact disagrees with the candidate.
func matchesExactConstraints(cand string, history []Observation) bool {
	for _, obs := range history {
		if len(obs.Word) != len(cand) {
			continue
		}
		for i, v := range obs.Verdicts {
			if v == feedback.Exact && cand[i] != obs.Word[i] {
				return false
			}
		}
	}
	return true
}
