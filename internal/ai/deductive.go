// internal/ai/deductive.go
//
// Deductive (hard) tier: a candidate survives only if replaying every prior
// guess against it reproduces the observed verdicts exactly. Reusing the
// feedback scorer as the oracle encodes exact, present, and absent marks
// with correct duplicate-letter semantics for free.
//
// Survivors are ranked: bonus for distinct letters, penalty for repeats,
// bonus for high-frequency English letters, plus a small random jitter so
// play is not perfectly deterministic. Six attempts, long thinking delay.

package ai

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/words"
)

// English letters by approximate frequency, most common first.
const letterFrequency = "etaoinshrdlu"

type deductive struct {
	base
}

func (s *deductive) Tier() score.Tier { return score.TierDeductive }

func (s *deductive) SelectSecretWord(length int) (string, error) {
	return s.selectSecret(length)
}

// Deliberately slow so the hard tier feels thoughtful.
func (s *deductive) TurnInterval() (min, max time.Duration) {
	return 6 * time.Second, 7 * time.Second
}

func (s *deductive) MaxAttempts() int { return 6 }

func (s *deductive) NextGuess(length int, history []Observation) (string, error) {
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
		return consistentWithHistory(cand, history)
	})
	return s.choose(length, filtered, func(cands []string) string {
		best := cands[0]
		bestScore := s.rank(best)
		for _, c := range cands[1:] {
			if r := s.rank(c); r > bestScore {
				best, bestScore = c, r
			}
		}
		return best
	})
}

// consistentWithHistory replays each prior guess against the candidate and
// demands the oracle reproduce the observed verdicts exactly.
func consistentWithHistory(cand string, history []Observation) bool {
	for _, obs := range history {
		got, err := feedback.Score(obs.Word, cand)
		if err != nil || len(got) != len(obs.Verdicts) {
			return false
		}
		for i := range got {
			if got[i] != obs.Verdicts[i] {
				return false
			}
		}
	}
	return true
}

// rank scores a candidate for information value.
func (s *deductive) rank(cand string) float64 {
	distinct := lo.Uniq([]byte(cand))
	r := float64(len(distinct)) * 3.0          // distinct-letter bonus
	r -= float64(len(cand)-len(distinct)) * 2.0 // repeated-letter penalty
	for _, c := range distinct {
		if i := strings.IndexByte(letterFrequency, c); i >= 0 {
			r += float64(len(letterFrequency)-i) * 0.5
		}
	}
	r += s.rng.Float64() // jitter breaks ties non-deterministically
	return r
}
