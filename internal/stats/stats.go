// internal/stats/stats.go
//
// Cumulative player statistics and the global leaderboard.
//
// Layout on the opaque store:
//   - hash  stats:<playerID>  → gamesPlayed / wins / losses / draws /
//                               totalPoints / bestScore / streak / displayName
//   - zset  leaderboard       → member=playerID, score=totalPoints
//
// Settlement is invoked exactly once per finished match per human player,
// guarded by the match's statisticsApplied flag; this package itself is a
// plain accumulator.

package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/robalobadob/wordduel/internal/store"
)

const leaderboardKey = "leaderboard"

// Outcome is the per-player result being settled.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// PlayerStats is one player's cumulative record.
type PlayerStats struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
	TotalPoints int    `json:"totalPoints"`
	BestScore   int    `json:"bestScore"`
	Streak      int    `json:"streak"`
}

// Entry is one leaderboard row.
type Entry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	TotalPoints int    `json:"totalPoints"`
}

// Recorder persists statistics settlements.
type Recorder struct {
	st store.Store
}

// NewRecorder constructs a Recorder over the given store.
func NewRecorder(st store.Store) *Recorder {
	return &Recorder{st: st}
}

func statsKey(playerID string) string { return "stats:" + playerID }

// Apply settles one finished match for one player: bumps counters, adds the
// awarded points, and refreshes the leaderboard entry.
func (r *Recorder) Apply(ctx context.Context, playerID, displayName string, outcome Outcome, points int) error {
	cur, err := r.PlayerStats(ctx, playerID)
	if err != nil {
		return err
	}

	cur.GamesPlayed++
	switch outcome {
	case OutcomeWin:
		cur.Wins++
		cur.Streak++
	case OutcomeLoss:
		cur.Losses++
		cur.Streak = 0
	case OutcomeDraw:
		cur.Draws++
	default:
		return fmt.Errorf("stats: unknown outcome %q", outcome)
	}
	cur.TotalPoints += points
	if points > cur.BestScore {
		cur.BestScore = points
	}

	key := statsKey(playerID)
	fields := map[string]string{
		"gamesPlayed": strconv.Itoa(cur.GamesPlayed),
		"wins":        strconv.Itoa(cur.Wins),
		"losses":      strconv.Itoa(cur.Losses),
		"draws":       strconv.Itoa(cur.Draws),
		"totalPoints": strconv.Itoa(cur.TotalPoints),
		"bestScore":   strconv.Itoa(cur.BestScore),
		"streak":      strconv.Itoa(cur.Streak),
		"displayName": displayName,
	}
	for f, v := range fields {
		if err := r.st.HashSet(ctx, key, f, v); err != nil {
			return err
		}
	}
	return r.st.SortedSetAdd(ctx, leaderboardKey, playerID, float64(cur.TotalPoints))
}

// PlayerStats loads one player's cumulative record (zero-valued if the
// player has never settled a match).
func (r *Recorder) PlayerStats(ctx context.Context, playerID string) (PlayerStats, error) {
	out := PlayerStats{PlayerID: playerID}
	fields, err := r.st.HashGetAll(ctx, statsKey(playerID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return out, err
	}
	out.DisplayName = fields["displayName"]
	out.GamesPlayed = atoi(fields["gamesPlayed"])
	out.Wins = atoi(fields["wins"])
	out.Losses = atoi(fields["losses"])
	out.Draws = atoi(fields["draws"])
	out.TotalPoints = atoi(fields["totalPoints"])
	out.BestScore = atoi(fields["bestScore"])
	out.Streak = atoi(fields["streak"])
	return out, nil
}

// Leaderboard returns the top players by cumulative points.
func (r *Recorder) Leaderboard(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	members, err := r.st.SortedSetRange(ctx, leaderboardKey, 0, limit-1, true)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(members))
	for i, m := range members {
		name, err := r.st.HashGet(ctx, statsKey(m.Member), "displayName")
		if err != nil {
			name = ""
		}
		out = append(out, Entry{
			Rank:        i + 1,
			PlayerID:    m.Member,
			DisplayName: name,
			TotalPoints: int(m.Score),
		})
	}
	return out, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
