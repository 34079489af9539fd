// internal/score/score.go
//
// Scoring engine: converts a finished match outcome into a point breakdown.
//
// The function is pure. Callers must snapshot the remaining-time basis once
// per settlement and pass the same value wherever the breakdown is shown, so
// a provisional display and the final settlement never disagree.

package score

import (
	"math"
	"strings"

	"github.com/robalobadob/wordduel/internal/feedback"
)

// Tier identifies an AI skill level. Empty means "no AI involved".
type Tier string

const (
	TierRelaxed   Tier = "relaxed"
	TierFiltering Tier = "filtering"
	TierDeductive Tier = "deductive"
)

// ValidTier reports whether t names a known AI tier.
func ValidTier(t Tier) bool {
	switch t {
	case TierRelaxed, TierFiltering, TierDeductive:
		return true
	}
	return false
}

const (
	winBase        = 50
	guessBonusStep = 15
	guessBonusFrom = 6
	speedBonusCap  = 60
	letterBonus    = 5
	multiLossAward = 100
	multiMult      = 2.5
)

// singleLossAward is the flat consolation award for losing to the AI.
var singleLossAward = map[Tier]int{
	TierRelaxed:   20,
	TierFiltering: 30,
	TierDeductive: 50,
}

// difficultyMult scales a win by the opposing AI's tier.
var difficultyMult = map[Tier]float64{
	TierRelaxed:   1.0,
	TierFiltering: 1.3,
	TierDeductive: 1.6,
}

// GuessFeedback is the slice of verdicts one submitted guess produced,
// paired with the guessed word. The engine only needs these two fields, so
// it takes its own view type rather than the full match record.
type GuessFeedback struct {
	Word     string
	Verdicts []feedback.Verdict
}

// Input captures one player's outcome in a finished match.
type Input struct {
	Won             bool
	GuessCount      int
	TimeRemainingMs int64
	Tier            Tier // empty for multiplayer / no AI opponent
	Multiplayer     bool
	Guesses         []GuessFeedback
}

// Breakdown itemizes the points awarded for one player's match outcome.
// Derived, never persisted as authoritative: recompute from the finished
// match on demand.
type Breakdown struct {
	BasePoints           int     `json:"basePoints"`
	GuessEfficiencyBonus int     `json:"guessEfficiencyBonus"`
	SpeedBonus           int     `json:"speedBonus"`
	LetterAccuracyBonus  int     `json:"letterAccuracyBonus"`
	DifficultyMultiplier float64 `json:"difficultyMultiplier"`
	ModeMultiplier       float64 `json:"modeMultiplier"`
	Total                int     `json:"total"`
	UniqueCorrectLetters int     `json:"uniqueCorrectLetters"`
}

// Score computes the point breakdown for one player's outcome.
//
// Loss: a fixed award and nothing else: {20,30,50} by tier single-player,
// 100 flat multiplayer.
//
// Win: base 50 + guess-efficiency bonus + speed bonus + letter-accuracy
// bonus, multiplied by the difficulty multiplier ({1.0,1.3,1.6} by tier,
// 1.0 when no tier applies) and the mode multiplier (2.5 multiplayer),
// floored to an integer.
func Score(in Input) Breakdown {
	unique := UniqueCorrectLetters(in.Guesses)

	if !in.Won {
		award := multiLossAward
		if !in.Multiplayer {
			if v, ok := singleLossAward[in.Tier]; ok {
				award = v
			} else {
				award = singleLossAward[TierRelaxed]
			}
		}
		return Breakdown{
			BasePoints:           award,
			DifficultyMultiplier: 1.0,
			ModeMultiplier:       1.0,
			Total:                award,
			UniqueCorrectLetters: unique,
		}
	}

	guessBonus := 0
	if in.GuessCount < guessBonusFrom {
		guessBonus = (guessBonusFrom - in.GuessCount) * guessBonusStep
	}

	// One point per 5 s remaining, capped.
	speedBonus := int(in.TimeRemainingMs / 1000 / 5)
	if speedBonus > speedBonusCap {
		speedBonus = speedBonusCap
	}
	if speedBonus < 0 {
		speedBonus = 0
	}

	letters := letterBonus * unique

	diffMult := 1.0
	if !in.Multiplayer {
		if m, ok := difficultyMult[in.Tier]; ok {
			diffMult = m
		}
	}
	modeMult := 1.0
	if in.Multiplayer {
		modeMult = multiMult
	}

	total := int(math.Floor(float64(winBase+guessBonus+speedBonus+letters) * diffMult * modeMult))

	return Breakdown{
		BasePoints:           winBase,
		GuessEfficiencyBonus: guessBonus,
		SpeedBonus:           speedBonus,
		LetterAccuracyBonus:  letters,
		DifficultyMultiplier: diffMult,
		ModeMultiplier:       modeMult,
		Total:                total,
		UniqueCorrectLetters: unique,
	}
}

// UniqueCorrectLetters counts the distinct letters ever marked exact or
// present across all of a player's guesses, case-insensitive.
func UniqueCorrectLetters(guesses []GuessFeedback) int {
	var seen [26]bool
	for _, g := range guesses {
		word := strings.ToLower(g.Word)
		for i, v := range g.Verdicts {
			if v != feedback.Exact && v != feedback.Present {
				continue
			}
			if i < len(word) {
				c := word[i]
				if c >= 'a' && c <= 'z' {
					seen[c-'a'] = true
				}
			}
		}
	}
	n := 0
	for _, b := range seen {
		if b {
			n++
		}
	}
	return n
}
