// internal/feedback/feedback.go
//
// Per-letter guess evaluation for the duel engine.
// Defines:
//   - Verdict: closed enum for a single letter's result (exact/present/absent).
//   - Score:   the two-pass evaluation of a guess against a secret word.
//
// Score is a pure function: no side effects, deterministic, safe for
// concurrent callers. The AI's deductive tier reuses it as a constraint
// oracle, so its duplicate-letter semantics are load-bearing.

package feedback

import "fmt"

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter does not exist in the secret at all.
type Verdict string

const (
	Exact   Verdict = "exact"
	Present Verdict = "present"
	Absent  Verdict = "absent"
)

// Score evaluates guess against secret using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) secret letters by letter index.
//
// Pass 2:
//   - For each non-exact guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark absent.
//
// The ordering guarantees a letter is never credited as present more times
// than it occurs, unconsumed, in the secret: the classic duplicate-letter
// correctness requirement.
//
// Inputs must be equal-length lowercase a–z strings; a length mismatch is an
// error, non-letter bytes fall through to absent.
func Score(guess, secret string) ([]Verdict, error) {
	if len(guess) != len(secret) {
		return nil, fmt.Errorf("feedback: length mismatch: guess %d vs secret %d", len(guess), len(secret))
	}
	n := len(guess)
	res := make([]Verdict, n)

	// Letter frequency for the non-exact positions (a–z).
	var counts [26]int

	// First pass: mark exacts and collect counts for remaining secret letters.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Exact
		} else if j := idx(secret[i]); j >= 0 {
			counts[j]++
		}
	}

	// Second pass: resolve presents/absents for non-exact tiles.
	for i := 0; i < n; i++ {
		if res[i] == Exact {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}

// AllExact reports whether every verdict is Exact (a winning guess).
func AllExact(vs []Verdict) bool {
	for _, v := range vs {
		if v != Exact {
			return false
		}
	}
	return len(vs) > 0
}

// idx maps a lowercase ASCII letter byte to 0..25, or -1 for anything else.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
