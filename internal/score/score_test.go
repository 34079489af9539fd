package score

import (
	"testing"

	"github.com/robalobadob/wordduel/internal/feedback"
)

func TestScore_SinglePlayerLossIsFlat(t *testing.T) {
	cases := []struct {
		tier Tier
		want int
	}{
		{TierRelaxed, 20},
		{TierFiltering, 30},
		{TierDeductive, 50},
	}
	for _, tc := range cases {
		got := Score(Input{Won: false, Tier: tc.tier})
		if got.Total != tc.want {
			t.Errorf("loss at tier %q: total = %d, want %d", tc.tier, got.Total, tc.want)
		}
		if got.GuessEfficiencyBonus != 0 || got.SpeedBonus != 0 || got.LetterAccuracyBonus != 0 {
			t.Errorf("loss at tier %q carried bonuses: %+v", tc.tier, got)
		}
	}
}

func TestScore_MultiplayerLossIsFlatHundred(t *testing.T) {
	got := Score(Input{Won: false, Multiplayer: true, GuessCount: 6})
	if got.Total != 100 {
		t.Errorf("multiplayer loss total = %d, want 100", got.Total)
	}
}

// Hand-computed: base 50, guessBonus (6-1)*15 = 75, speedBonus capped 60,
// letterBonus 5*5 (all five letters exact on one guess), ×1.0 ×2.5.
func TestScore_MultiplayerWinHandComputed(t *testing.T) {
	allExact := []feedback.Verdict{
		feedback.Exact, feedback.Exact, feedback.Exact, feedback.Exact, feedback.Exact,
	}
	got := Score(Input{
		Won:             true,
		GuessCount:      1,
		TimeRemainingMs: 600000,
		Multiplayer:     true,
		Guesses:         []GuessFeedback{{Word: "crane", Verdicts: allExact}},
	})
	want := int(float64(50+75+60+25) * 2.5) // 525
	if got.Total != want {
		t.Errorf("total = %d, want %d (breakdown %+v)", got.Total, want, got)
	}
	if got.UniqueCorrectLetters != 5 {
		t.Errorf("unique correct letters = %d, want 5", got.UniqueCorrectLetters)
	}
}

func TestScore_DifficultyMultiplier(t *testing.T) {
	in := Input{Won: true, GuessCount: 6, TimeRemainingMs: 0, Tier: TierDeductive}
	got := Score(in)
	// base 50, no bonuses, ×1.6 = 80.
	if got.Total != 80 {
		t.Errorf("deductive win total = %d, want 80", got.Total)
	}
	in.Tier = TierFiltering
	if got := Score(in); got.Total != 65 {
		t.Errorf("filtering win total = %d, want 65", got.Total)
	}
}

func TestScore_SpeedBonusCapAndFloor(t *testing.T) {
	got := Score(Input{Won: true, GuessCount: 6, TimeRemainingMs: 3600000})
	if got.SpeedBonus != 60 {
		t.Errorf("speed bonus = %d, want cap 60", got.SpeedBonus)
	}
	got = Score(Input{Won: true, GuessCount: 6, TimeRemainingMs: -1000})
	if got.SpeedBonus != 0 {
		t.Errorf("speed bonus = %d, want 0 for negative remaining time", got.SpeedBonus)
	}
}

func TestUniqueCorrectLetters_DeduplicatesAcrossGuesses(t *testing.T) {
	guesses := []GuessFeedback{
		{Word: "crane", Verdicts: []feedback.Verdict{
			feedback.Exact, feedback.Absent, feedback.Present, feedback.Absent, feedback.Absent,
		}},
		// Same letters credited again must not double count.
		{Word: "carve", Verdicts: []feedback.Verdict{
			feedback.Exact, feedback.Present, feedback.Absent, feedback.Absent, feedback.Absent,
		}},
	}
	if got := UniqueCorrectLetters(guesses); got != 2 {
		t.Errorf("unique correct letters = %d, want 2 (c and a)", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	in := Input{Won: true, GuessCount: 3, TimeRemainingMs: 123456, Tier: TierFiltering}
	a := Score(in)
	b := Score(in)
	if a != b {
		t.Errorf("Score is not deterministic: %+v vs %+v", a, b)
	}
}
