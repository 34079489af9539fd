// internal/ai/filtering.go
//
// Filtering (medium) tier: uses exact and absent feedback but deliberately
// ignores present marks, making it strictly weaker than full deduction.
// Ten attempts, quick thinking delay.

package ai

import (
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/words"
)

type filtering struct {
	base
}

func (s *filtering) Tier() score.Tier { return score.TierFiltering }

func (s *filtering) SelectSecretWord(length int) (string, error) {
	return s.selectSecret(length)
}

func (s *filtering) TurnInterval() (min, max time.Duration) {
	return 800 * time.Millisecond, 1500 * time.Millisecond
}

func (s *filtering) MaxAttempts() int { return 10 }

func (s *filtering) NextGuess(length int, history []Observation) (string, error) {
	for _, obs := range history {
		s.markUsed(obs.Word)
	}
	if len(history) == 0 {
		if w, ok := s.opener(length); ok {
			s.markUsed(w)
			return w, nil
		}
	}

	absent := globallyAbsentLetters(history)
	filtered := lo.Filter(words.Pool(length), func(cand string, _ int) bool {
		if !matchesExactConstraints(cand, history) {
			return false
		}
		for i := 0; i < len(cand); i++ {
			if absent[cand[i]-'a'] {
				return false
			}
		}
		return true
	})
	return s.choose(length, filtered, func(cands []string) string {
		return cands[s.rng.Intn(len(cands))]
	})
}

// globallyAbsentLetters collects letters marked absent that were never
// marked exact in any guess. A letter can go absent on one guess yet be
// pinned exact on another when the secret holds fewer copies than the
// guess did; treating those as absent would eliminate the secret itself.
func globallyAbsentLetters(history []Observation) [26]bool {
	var absent, exact [26]bool
	for _, obs := range history {
		for i, v := range obs.Verdicts {
			c := obs.Word[i]
			if c < 'a' || c > 'z' {
				continue
			}
			switch v {
			case feedback.Absent:
				absent[c-'a'] = true
			case feedback.Exact:
				exact[c-'a'] = true
			}
		}
	}
	for i := range absent {
		if exact[i] {
			absent[i] = false
		}
	}
	return absent
}
