// internal/game/types.go
//
// Core type definitions for the duel engine.
// Defines:
//   - Mode / Phase / Winner: closed string enums for match lifecycle.
//   - GuessResult: one submitted guess plus its per-letter verdicts.
//   - PlayerState: one side of a match (human or computer).
//   - MatchState: full state of a single duel, the unit of persistence.

package game

import (
	"time"

	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/score"
)

// Mode distinguishes a human-vs-computer duel from a human-vs-human one.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

// Phase is the match lifecycle state. Finished is terminal.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseActive   Phase = "active"
	PhaseFinished Phase = "finished"
)

// Winner identifies the winning slot of a finished match.
type Winner string

const (
	WinnerNone Winner = "none"
	WinnerA    Winner = "playerA"
	WinnerB    Winner = "playerB"
	WinnerDraw Winner = "draw"
)

// GuessResult is one guess and its evaluation. Immutable once created;
// SubmittedAt is server-assigned under the per-match lock, so timestamps
// within a match are totally ordered.
type GuessResult struct {
	Word        string             `json:"word"`
	Feedback    []feedback.Verdict `json:"feedback"`
	SubmittedAt time.Time          `json:"submittedAt"`
}

// PlayerState is one side of a match. SecretWord is write-once at creation;
// Guesses is append-only and chronological.
type PlayerState struct {
	ID               string        `json:"id"`
	DisplayName      string        `json:"displayName"`
	SecretWord       string        `json:"secretWord"`
	SecretDefinition string        `json:"secretDefinition,omitempty"`
	Guesses          []GuessResult `json:"guesses"`
	IsComputer       bool          `json:"isComputer"`
	SkillTier        score.Tier    `json:"skillTier,omitempty"`
	LastActivity     time.Time     `json:"lastActivity"`
}

// MatchState is the persisted record of one duel.
//
// Invariants:
//   - TurnHolder is one of PlayerA.ID / PlayerB.ID while Phase is active.
//   - Once Phase is finished, Winner is set and StatisticsApplied
//     transitions false→true exactly once (guards double scoring).
type MatchState struct {
	MatchID           string       `json:"matchId"`
	Mode              Mode         `json:"mode"`
	Phase             Phase        `json:"phase"`
	Winner            Winner       `json:"winner"`
	StartedAt         time.Time    `json:"startedAt"`
	FinishedAt        time.Time    `json:"finishedAt,omitempty"`
	TimeLimitMs       int64        `json:"timeLimitMs"`
	WordLength        int          `json:"wordLength"`
	TurnHolder        string       `json:"turnHolder"`
	PlayerA           *PlayerState `json:"playerA"`
	PlayerB           *PlayerState `json:"playerB"`
	StatisticsApplied bool         `json:"statisticsApplied"`
}

// Player returns the player with the given id, or nil.
func (m *MatchState) Player(id string) *PlayerState {
	switch id {
	case m.PlayerA.ID:
		return m.PlayerA
	case m.PlayerB.ID:
		return m.PlayerB
	}
	return nil
}

// Opponent returns the other player, or nil if id is not in the match.
func (m *MatchState) Opponent(id string) *PlayerState {
	switch id {
	case m.PlayerA.ID:
		return m.PlayerB
	case m.PlayerB.ID:
		return m.PlayerA
	}
	return nil
}

// SlotOf maps a player id to its winner slot.
func (m *MatchState) SlotOf(id string) Winner {
	switch id {
	case m.PlayerA.ID:
		return WinnerA
	case m.PlayerB.ID:
		return WinnerB
	}
	return WinnerNone
}

// WinnerID returns the winning player's id, or "" for none/draw.
func (m *MatchState) WinnerID() string {
	switch m.Winner {
	case WinnerA:
		return m.PlayerA.ID
	case WinnerB:
		return m.PlayerB.ID
	}
	return ""
}

// Elapsed is wall-clock time since the match started.
func (m *MatchState) Elapsed(now time.Time) time.Duration {
	return now.Sub(m.StartedAt)
}

// RemainingMs is the time budget left at now, floored at zero.
func (m *MatchState) RemainingMs(now time.Time) int64 {
	rem := m.TimeLimitMs - m.Elapsed(now).Milliseconds()
	if rem < 0 {
		return 0
	}
	return rem
}

// aiPlayer returns the computer side of a single-player match, or nil.
func (m *MatchState) aiPlayer() *PlayerState {
	if m.PlayerA.IsComputer {
		return m.PlayerA
	}
	if m.PlayerB.IsComputer {
		return m.PlayerB
	}
	return nil
}

// View returns a copy safe to hand to the given viewer: the opponent's
// secret word (and definition) are blanked until the match finishes.
func (m *MatchState) View(viewerID string) *MatchState {
	cp := *m
	a := *m.PlayerA
	b := *m.PlayerB
	cp.PlayerA, cp.PlayerB = &a, &b
	if m.Phase != PhaseFinished {
		if viewerID != a.ID {
			a.SecretWord, a.SecretDefinition = "", ""
		}
		if viewerID != b.ID {
			b.SecretWord, b.SecretDefinition = "", ""
		}
	}
	return &cp
}
