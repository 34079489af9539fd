// internal/game/manager.go
//
// GameStateManager: owns match lifecycle, guess submission, turn switching,
// end-condition evaluation, disconnect detection, and statistics settlement.
//
// Concurrency model: all read-modify-write on a match record happens under
// that match's mutex, so guess timestamps are totally ordered per match and
// the one-shot statisticsApplied flag cannot double-fire. The store itself
// is last-writer-wins; the per-match lock converts the tolerated race into
// serialized access within this process.
//
// AI-turn advancement is owned by a TurnScheduler (one cancelable timer per
// match); state reads only re-arm the timer defensively, they never advance
// the AI inline.

package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordduel/internal/ai"
	"github.com/robalobadob/wordduel/internal/feedback"
	"github.com/robalobadob/wordduel/internal/matchmaking"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/stats"
	"github.com/robalobadob/wordduel/internal/store"
	"github.com/robalobadob/wordduel/internal/words"
)

const (
	// DefaultTimeLimit bounds a match's wall-clock duration.
	DefaultTimeLimit = 5 * time.Minute

	// matchRetention keeps finished matches readable for a while before the
	// store expires them.
	matchRetention = 24 * time.Hour

	// multiplayerMaxGuesses caps each human's attempts in a duel between
	// two humans; both exhausting it without a win is a draw.
	multiplayerMaxGuesses = 6

	// disconnectAfter force-ends a multiplayer match when one side has been
	// silent this long; disconnectGrace avoids false positives on freshly
	// created matches.
	disconnectAfter = 5 * time.Minute
	disconnectGrace = 30 * time.Second

	// skipTurnDwell is the minimum idle time before a player may forfeit
	// their own turn.
	skipTurnDwell = 5 * time.Second

	fallbackDefinition = "No definition available."
)

// Dictionary is the external word-lookup collaborator. Implementations are
// best-effort: validation falls back to the offline pool, definition lookup
// falls back to a generic string.
type Dictionary interface {
	IsValidWord(ctx context.Context, word string) bool
	DefinitionOf(ctx context.Context, word string) string
}

// TurnScheduler owns AI-turn advancement: one cancelable timer per match.
// Schedule is idempotent while a timer is pending; Cancel is a no-op for
// unknown matches.
type TurnScheduler interface {
	Schedule(matchID string, delay time.Duration)
	Cancel(matchID string)
}

// SubmitResult is the outcome of one guess submission.
type SubmitResult struct {
	Match      *MatchState
	Guess      *GuessResult
	MatchEnded bool
	Breakdown  *score.Breakdown // set for a human guesser when the match ended
}

// Manager orchestrates matches over the opaque store.
type Manager struct {
	st         store.Store
	dict       Dictionary
	strategies *ai.Registry
	recorder   *stats.Recorder
	queue      *matchmaking.Queue
	scheduler  TurnScheduler
	timeLimit  time.Duration
	rng        *rand.Rand

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewManager wires a Manager. The matchmaking queue screens candidates
// through this manager's active-match index.
func NewManager(st store.Store, dict Dictionary, recorder *stats.Recorder, timeLimit time.Duration) *Manager {
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	m := &Manager{
		st:         st,
		dict:       dict,
		strategies: ai.NewRegistry(),
		recorder:   recorder,
		timeLimit:  timeLimit,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		locks:      make(map[string]*sync.Mutex),
		now:        time.Now,
	}
	m.queue = matchmaking.New(m)
	return m
}

// SetScheduler installs the AI-turn scheduler. Optional; without one, AI
// turns advance only via explicit TriggerAIGuess calls.
func (m *Manager) SetScheduler(s TurnScheduler) { m.scheduler = s }

// Queue exposes the matchmaking queue for status/leave endpoints.
func (m *Manager) Queue() *matchmaking.Queue { return m.queue }

// lock returns the mutex serializing access to one match, creating it on
// first use.
func (m *Manager) lock(matchID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[matchID] = l
	}
	return l
}

// ---------------------------- match creation -------------------------------

// CreateSinglePlayer starts a human-vs-computer match. The human's secret
// word must already have passed dictionary validation; shape is re-checked
// here.
func (m *Manager) CreateSinglePlayer(ctx context.Context, playerID, displayName, secretWord string, wordLength int, tier score.Tier) (*MatchState, error) {
	secretWord, err := normalizeWord(secretWord, wordLength)
	if err != nil {
		return nil, err
	}
	if !score.ValidTier(tier) {
		return nil, Validationf("unknown difficulty tier %q", tier)
	}
	if playerID == "" {
		return nil, Validationf("missing player id")
	}

	matchID := uuid.NewString()
	strategy, err := m.strategies.GetOrCreate(matchID, tier)
	if err != nil {
		return nil, err
	}
	aiSecret, err := strategy.SelectSecretWord(wordLength)
	if err != nil {
		m.strategies.Drop(matchID)
		return nil, fmt.Errorf("select computer secret: %w", err)
	}

	now := m.now()
	match := &MatchState{
		MatchID:     matchID,
		Mode:        ModeSingle,
		Phase:       PhaseActive,
		Winner:      WinnerNone,
		StartedAt:   now,
		TimeLimitMs: m.timeLimit.Milliseconds(),
		WordLength:  wordLength,
		TurnHolder:  playerID,
		PlayerA: &PlayerState{
			ID:           playerID,
			DisplayName:  displayName,
			SecretWord:   secretWord,
			Guesses:      []GuessResult{},
			LastActivity: now,
		},
		PlayerB: &PlayerState{
			ID:           "cpu-" + matchID[:8],
			DisplayName:  "Computer (" + string(tier) + ")",
			SecretWord:   aiSecret,
			Guesses:      []GuessResult{},
			IsComputer:   true,
			SkillTier:    tier,
			LastActivity: now,
		},
	}
	if err := m.persist(ctx, match); err != nil {
		m.strategies.Drop(matchID)
		return nil, err
	}
	m.bind(ctx, playerID, matchID)
	log.Info().Str("matchId", matchID).Str("tier", string(tier)).Int("wordLength", wordLength).Msg("single-player match created")
	return match, nil
}

// JoinResult is the outcome of a multiplayer create-or-join request.
type JoinResult struct {
	Matched bool
	Match   *MatchState // nil while waiting
}

// CreateOrJoinMultiplayer enqueues the player, creating a match immediately
// when an opponent of the same word length is already waiting. The player
// who queued first holds the opening turn.
func (m *Manager) CreateOrJoinMultiplayer(ctx context.Context, playerID, displayName, secretWord string, wordLength int) (JoinResult, error) {
	secretWord, err := normalizeWord(secretWord, wordLength)
	if err != nil {
		return JoinResult{}, err
	}
	if playerID == "" {
		return JoinResult{}, Validationf("missing player id")
	}

	res := m.queue.Enqueue(ctx, matchmaking.Entry{
		PlayerID:    playerID,
		DisplayName: displayName,
		SecretWord:  secretWord,
		WordLength:  wordLength,
	})
	if !res.Matched {
		return JoinResult{}, nil
	}

	now := m.now()
	opp := res.Opponent
	match := &MatchState{
		MatchID:     uuid.NewString(),
		Mode:        ModeMulti,
		Phase:       PhaseActive,
		Winner:      WinnerNone,
		StartedAt:   now,
		TimeLimitMs: m.timeLimit.Milliseconds(),
		WordLength:  wordLength,
		TurnHolder:  opp.PlayerID, // first in queue moves first
		PlayerA: &PlayerState{
			ID:           opp.PlayerID,
			DisplayName:  opp.DisplayName,
			SecretWord:   opp.SecretWord,
			Guesses:      []GuessResult{},
			LastActivity: now,
		},
		PlayerB: &PlayerState{
			ID:           playerID,
			DisplayName:  displayName,
			SecretWord:   secretWord,
			Guesses:      []GuessResult{},
			LastActivity: now,
		},
	}
	if err := m.persist(ctx, match); err != nil {
		return JoinResult{}, err
	}
	m.bind(ctx, opp.PlayerID, match.MatchID)
	m.bind(ctx, playerID, match.MatchID)
	log.Info().Str("matchId", match.MatchID).Str("playerA", opp.PlayerID).Str("playerB", playerID).Msg("multiplayer match paired")
	return JoinResult{Matched: true, Match: match}, nil
}

// --------------------------- guess submission ------------------------------

// SubmitGuess applies one guess for the given player. The word must already
// have passed dictionary validation; shape is re-checked here. Failed
// submissions are never auto-retried.
func (m *Manager) SubmitGuess(ctx context.Context, matchID, playerID, word string) (SubmitResult, error) {
	l := m.lock(matchID)
	l.Lock()
	defer l.Unlock()

	match, err := m.load(ctx, matchID)
	if err != nil {
		return SubmitResult{}, err
	}
	if m.sweep(ctx, match) {
		return SubmitResult{}, ErrMatchFinished
	}
	player := match.Player(playerID)
	if player == nil {
		return SubmitResult{}, ErrAccessDenied
	}
	return m.applyGuessLocked(ctx, match, player, word)
}

// TriggerAIGuess advances the computer's turn: asks the strategy for its
// next word and submits it. Callers treat failures as transient (logged,
// retried on the next poll); they never end the match.
func (m *Manager) TriggerAIGuess(ctx context.Context, matchID string) (SubmitResult, error) {
	l := m.lock(matchID)
	l.Lock()
	defer l.Unlock()

	match, err := m.load(ctx, matchID)
	if err != nil {
		return SubmitResult{}, err
	}
	if m.sweep(ctx, match) {
		return SubmitResult{}, ErrMatchFinished
	}
	cpu := match.aiPlayer()
	if cpu == nil || match.Phase != PhaseActive || match.TurnHolder != cpu.ID {
		return SubmitResult{}, ErrNotAITurn
	}

	strategy, err := m.strategies.GetOrCreate(matchID, cpu.SkillTier)
	if err != nil {
		return SubmitResult{}, err
	}
	history := make([]ai.Observation, 0, len(cpu.Guesses))
	for _, g := range cpu.Guesses {
		history = append(history, ai.Observation{Word: g.Word, Verdicts: g.Feedback})
	}
	word, err := strategy.NextGuess(match.WordLength, history)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("ai next guess: %w", err)
	}
	return m.applyGuessLocked(ctx, match, cpu, word)
}

// applyGuessLocked validates turn order and word shape, scores the guess
// against the opponent's secret, flips the turn, and evaluates end
// conditions. Caller holds the match lock.
func (m *Manager) applyGuessLocked(ctx context.Context, match *MatchState, player *PlayerState, word string) (SubmitResult, error) {
	if match.Phase != PhaseActive {
		return SubmitResult{}, ErrMatchNotActive
	}
	if match.TurnHolder != player.ID {
		return SubmitResult{}, ErrNotYourTurn
	}
	// A skipped opponent turn can hand the turn back to a player who has
	// already spent the full budget; the cap still binds.
	if match.Mode == ModeMulti && len(player.Guesses) >= multiplayerMaxGuesses {
		return SubmitResult{}, ErrNoAttemptsLeft
	}
	word, err := normalizeWord(word, match.WordLength)
	if err != nil {
		return SubmitResult{}, err
	}

	now := m.now()
	opponent := match.Opponent(player.ID)
	verdicts, err := feedback.Score(word, opponent.SecretWord)
	if err != nil {
		return SubmitResult{}, err
	}
	guess := GuessResult{Word: word, Feedback: verdicts, SubmittedAt: now}
	player.Guesses = append(player.Guesses, guess)
	player.LastActivity = now
	match.TurnHolder = opponent.ID

	ended := m.evaluateEnd(match, now)
	if ended {
		m.settle(ctx, match)
	}
	if err := m.persist(ctx, match); err != nil {
		return SubmitResult{}, err
	}
	if !ended {
		m.ensureAIScheduled(match)
	}

	res := SubmitResult{Match: match, Guess: &guess, MatchEnded: ended}
	if ended && !player.IsComputer {
		res.Breakdown = m.Breakdown(match, player.ID)
	}
	return res, nil
}

// ------------------------------ state reads --------------------------------

// State returns the match as seen by viewerID, after evaluating time,
// attempt, and disconnect end conditions. The opponent's secret stays
// blanked until the match finishes.
func (m *Manager) State(ctx context.Context, matchID, viewerID string) (*MatchState, error) {
	l := m.lock(matchID)
	l.Lock()
	defer l.Unlock()

	match, err := m.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Player(viewerID) == nil {
		return nil, ErrAccessDenied
	}
	if !m.sweep(ctx, match) {
		m.ensureAIScheduled(match)
	}
	return match.View(viewerID), nil
}

// SkipTurn lets the turn holder forfeit their turn after the minimum dwell,
// advancing the opponent without recording a guess. Multiplayer only; it
// exists so an idle player cannot stall the match under polling.
func (m *Manager) SkipTurn(ctx context.Context, matchID, playerID string) (*MatchState, error) {
	l := m.lock(matchID)
	l.Lock()
	defer l.Unlock()

	match, err := m.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.sweep(ctx, match) {
		return nil, ErrMatchFinished
	}
	if match.Mode != ModeMulti {
		return nil, Validationf("turn skip is only available in multiplayer")
	}
	player := match.Player(playerID)
	if player == nil {
		return nil, ErrAccessDenied
	}
	if match.Phase != PhaseActive {
		return nil, ErrMatchNotActive
	}
	if match.TurnHolder != playerID {
		return nil, ErrNotYourTurn
	}
	now := m.now()
	if now.Sub(player.LastActivity) < skipTurnDwell {
		return nil, ErrTurnDwell
	}
	player.LastActivity = now
	match.TurnHolder = match.Opponent(playerID).ID
	if err := m.persist(ctx, match); err != nil {
		return nil, err
	}
	return match.View(playerID), nil
}

// Quit concedes the match: the quitting player loses, the opponent wins.
// Quitting an already finished match is a no-op returning current state.
func (m *Manager) Quit(ctx context.Context, matchID, playerID string) (*MatchState, error) {
	l := m.lock(matchID)
	l.Lock()
	defer l.Unlock()

	match, err := m.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	player := match.Player(playerID)
	if player == nil {
		return nil, ErrAccessDenied
	}
	if match.Phase != PhaseFinished {
		now := m.now()
		match.Phase = PhaseFinished
		match.FinishedAt = now
		match.Winner = match.SlotOf(match.Opponent(playerID).ID)
		m.settle(ctx, match)
		if err := m.persist(ctx, match); err != nil {
			return nil, err
		}
		log.Info().Str("matchId", matchID).Str("playerId", playerID).Msg("player quit match")
	}
	return match.View(playerID), nil
}

// --------------------------- end conditions --------------------------------

// sweep evaluates end conditions on a read path, settling and persisting if
// the match just became terminal. Reports whether the match is finished.
func (m *Manager) sweep(ctx context.Context, match *MatchState) bool {
	if match.Phase == PhaseFinished {
		return true
	}
	if !m.evaluateEnd(match, m.now()) {
		return false
	}
	m.settle(ctx, match)
	if err := m.persist(ctx, match); err != nil {
		log.Warn().Err(err).Str("matchId", match.MatchID).Msg("persist after terminal sweep")
	}
	return true
}

// evaluateEnd checks all end conditions and applies the terminal transition
// when one holds. Checked after every guess and on every state read.
func (m *Manager) evaluateEnd(match *MatchState, now time.Time) bool {
	if match.Phase != PhaseActive {
		return match.Phase == PhaseFinished
	}

	finish := func(w Winner) {
		match.Phase = PhaseFinished
		match.Winner = w
		match.FinishedAt = now
	}

	// (a) A guess equal to the opponent's secret; earliest timestamp wins
	// when both sides have one.
	var winID string
	var winAt time.Time
	for _, p := range []*PlayerState{match.PlayerA, match.PlayerB} {
		opp := match.Opponent(p.ID)
		for _, g := range p.Guesses {
			if g.Word == opp.SecretWord {
				if winID == "" || g.SubmittedAt.Before(winAt) {
					winID, winAt = p.ID, g.SubmittedAt
				}
				break
			}
		}
	}
	if winID != "" {
		finish(match.SlotOf(winID))
		return true
	}

	// (b) Wall-clock time limit.
	if match.Elapsed(now).Milliseconds() >= match.TimeLimitMs {
		finish(WinnerDraw)
		return true
	}

	// (c) Attempt exhaustion.
	if match.Mode == ModeSingle {
		cpu := match.aiPlayer()
		human := match.Opponent(cpu.ID)
		if max := ai.MaxAttemptsFor(cpu.SkillTier); max > 0 {
			// Human out of attempts: the computer takes the match.
			if len(human.Guesses) >= max {
				finish(match.SlotOf(cpu.ID))
				return true
			}
			// Computer out of attempts: it concedes.
			if len(cpu.Guesses) >= max {
				finish(match.SlotOf(human.ID))
				return true
			}
		}
	} else {
		if len(match.PlayerA.Guesses) >= multiplayerMaxGuesses &&
			len(match.PlayerB.Guesses) >= multiplayerMaxGuesses {
			finish(WinnerDraw)
			return true
		}
	}

	// (d) Disconnect detection, multiplayer only, after the grace period.
	if match.Mode == ModeMulti && match.Elapsed(now) > disconnectGrace {
		aStale := now.Sub(match.PlayerA.LastActivity) > disconnectAfter
		bStale := now.Sub(match.PlayerB.LastActivity) > disconnectAfter
		switch {
		case aStale && bStale:
			finish(WinnerDraw)
			return true
		case aStale:
			finish(WinnerB)
			return true
		case bStale:
			finish(WinnerA)
			return true
		}
	}
	return false
}

// settle runs the terminal side effects exactly once: cancels the AI timer,
// discards the strategy, fills in secret-word definitions, and applies
// scoring to each human's persisted statistics under the one-shot guard.
func (m *Manager) settle(ctx context.Context, match *MatchState) {
	if m.scheduler != nil {
		m.scheduler.Cancel(match.MatchID)
	}
	m.strategies.Drop(match.MatchID)
	m.unbind(ctx, match.PlayerA.ID)
	m.unbind(ctx, match.PlayerB.ID)

	for _, p := range []*PlayerState{match.PlayerA, match.PlayerB} {
		if p.SecretDefinition == "" {
			p.SecretDefinition = m.definitionOf(ctx, p.SecretWord)
		}
	}

	if match.StatisticsApplied {
		return
	}
	match.StatisticsApplied = true

	for _, p := range []*PlayerState{match.PlayerA, match.PlayerB} {
		if p.IsComputer {
			continue
		}
		bd := m.Breakdown(match, p.ID)
		outcome := stats.OutcomeDraw
		switch match.Winner {
		case match.SlotOf(p.ID):
			outcome = stats.OutcomeWin
		case WinnerDraw:
			outcome = stats.OutcomeDraw
		default:
			outcome = stats.OutcomeLoss
		}
		if err := m.recorder.Apply(ctx, p.ID, p.DisplayName, outcome, bd.Total); err != nil {
			log.Warn().Err(err).Str("matchId", match.MatchID).Str("playerId", p.ID).Msg("apply statistics")
		}
	}
	log.Info().Str("matchId", match.MatchID).Str("winner", string(match.Winner)).Msg("match settled")
}

// Breakdown recomputes the point breakdown for one player of a finished
// match. The remaining-time basis is snapshotted from the terminal
// transition, so provisional display and settlement always agree.
func (m *Manager) Breakdown(match *MatchState, playerID string) *score.Breakdown {
	p := match.Player(playerID)
	if p == nil || match.Phase != PhaseFinished {
		return nil
	}
	remaining := match.TimeLimitMs - match.FinishedAt.Sub(match.StartedAt).Milliseconds()
	if remaining < 0 {
		remaining = 0
	}
	var tier score.Tier
	if match.Mode == ModeSingle {
		if cpu := match.aiPlayer(); cpu != nil {
			tier = cpu.SkillTier
		}
	}
	guesses := make([]score.GuessFeedback, 0, len(p.Guesses))
	for _, g := range p.Guesses {
		guesses = append(guesses, score.GuessFeedback{Word: g.Word, Verdicts: g.Feedback})
	}
	bd := score.Score(score.Input{
		Won:             match.WinnerID() == playerID,
		GuessCount:      len(p.Guesses),
		TimeRemainingMs: remaining,
		Tier:            tier,
		Multiplayer:     match.Mode == ModeMulti,
		Guesses:         guesses,
	})
	return &bd
}

// definitionOf looks up a secret word's definition, best-effort.
func (m *Manager) definitionOf(ctx context.Context, word string) string {
	if m.dict == nil {
		return fallbackDefinition
	}
	if def := m.dict.DefinitionOf(ctx, word); def != "" {
		return def
	}
	return fallbackDefinition
}

// ensureAIScheduled arms the AI timer when a single-player match is waiting
// on the computer. Idempotent via the scheduler.
func (m *Manager) ensureAIScheduled(match *MatchState) {
	if m.scheduler == nil || match.Mode != ModeSingle || match.Phase != PhaseActive {
		return
	}
	cpu := match.aiPlayer()
	if cpu == nil || match.TurnHolder != cpu.ID {
		return
	}
	min, max, err := ai.TurnIntervalFor(cpu.SkillTier)
	if err != nil {
		log.Warn().Err(err).Str("matchId", match.MatchID).Msg("resolve ai turn interval")
		return
	}
	delay := min
	if max > min {
		delay = min + time.Duration(m.rng.Int63n(int64(max-min)))
	}
	m.scheduler.Schedule(match.MatchID, delay)
}

// ------------------------- persistence & binding ---------------------------

func matchKey(id string) string       { return "match:" + id }
func playerMatchKey(id string) string { return "playermatch:" + id }

// load reads and decodes a match record.
func (m *Manager) load(ctx context.Context, matchID string) (*MatchState, error) {
	raw, err := m.st.Get(ctx, matchKey(matchID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	var match MatchState
	if err := json.Unmarshal([]byte(raw), &match); err != nil {
		return nil, fmt.Errorf("decode match %s: %w", matchID, err)
	}
	return &match, nil
}

// persist writes the match record with its retention TTL.
func (m *Manager) persist(ctx context.Context, match *MatchState) error {
	raw, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", match.MatchID, err)
	}
	return m.st.Set(ctx, matchKey(match.MatchID), string(raw), matchRetention)
}

// bind records the player→match index used by matchmaking screening.
func (m *Manager) bind(ctx context.Context, playerID, matchID string) {
	if err := m.st.Set(ctx, playerMatchKey(playerID), matchID, matchRetention); err != nil {
		log.Warn().Err(err).Str("playerId", playerID).Msg("bind player to match")
	}
}

func (m *Manager) unbind(ctx context.Context, playerID string) {
	if err := m.st.Delete(ctx, playerMatchKey(playerID)); err != nil {
		log.Warn().Err(err).Str("playerId", playerID).Msg("unbind player")
	}
}

// BoundToActiveMatch implements matchmaking.Binder: true only while the
// indexed match is still active. Stale bindings are evicted.
func (m *Manager) BoundToActiveMatch(ctx context.Context, playerID string) bool {
	matchID, err := m.st.Get(ctx, playerMatchKey(playerID))
	if err != nil {
		return false
	}
	match, err := m.load(ctx, matchID)
	if err != nil || match.Phase == PhaseFinished {
		m.unbind(ctx, playerID)
		return false
	}
	return true
}

// ------------------------------ validation ---------------------------------

// normalizeWord lowercases and shape-checks a word against the match's
// length. Dictionary membership is validated at the HTTP boundary.
func normalizeWord(word string, wordLength int) (string, error) {
	if !words.SupportedLength(wordLength) {
		return "", Validationf("unsupported word length %d", wordLength)
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != wordLength {
		return "", Validationf("word must be %d letters", wordLength)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return "", Validationf("word must contain only letters a-z")
		}
	}
	return word, nil
}
