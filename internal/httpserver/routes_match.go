// internal/httpserver/routes_match.go
//
// Match + matchmaking endpoints. All run behind optional auth: guests play
// under their anonymous cookie identity, accounts under their user id.
//
// The surface is poll-driven. Clients poll GET /match/{id} for state and
// call POST /match/{id}/ai-turn when the computer's turn interval elapses;
// the server-side scheduler advances AI turns as well, so ai-turn is safe
// to call redundantly.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordduel/internal/ai"
	"github.com/robalobadob/wordduel/internal/game"
	"github.com/robalobadob/wordduel/internal/score"
	"github.com/robalobadob/wordduel/internal/words"
)

// ----- request/response payloads -----

type createSingleReq struct {
	DisplayName string     `json:"displayName"`
	SecretWord  string     `json:"secretWord"`
	WordLength  int        `json:"wordLength"`
	Tier        score.Tier `json:"tier"`
}

type createMultiReq struct {
	DisplayName string `json:"displayName"`
	SecretWord  string `json:"secretWord"`
	WordLength  int    `json:"wordLength"`
}

type guessReq struct {
	Word string `json:"word"`
}

type submitResp struct {
	Match      *game.MatchState  `json:"matchState"`
	Guess      *game.GuessResult `json:"guessResult,omitempty"`
	MatchEnded bool              `json:"matchEnded"`
	Breakdown  *score.Breakdown  `json:"scoreBreakdown,omitempty"`
}

// mountMatchRoutes registers the duel endpoints on r.
func (s *Server) mountMatchRoutes(r chi.Router) {
	r.Post("/match/single", s.handleCreateSingle)
	r.Post("/match/multi", s.handleCreateOrJoinMulti)
	r.Get("/match/{id}", s.handleMatchState)
	r.Post("/match/{id}/guess", s.handleGuess)
	r.Post("/match/{id}/ai-turn", s.handleAITurn)
	r.Post("/match/{id}/skip-turn", s.handleSkipTurn)
	r.Post("/match/{id}/quit", s.handleQuit)

	r.Get("/ai/interval", s.handleAIInterval)

	r.Post("/queue/leave", s.handleQueueLeave)
	r.Get("/queue/status", s.handleQueueStatus)
}

// handleCreateSingle starts a match against the computer at the requested tier.
func (s *Server) handleCreateSingle(w http.ResponseWriter, r *http.Request) {
	var body createSingleReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	playerID, name := s.identity(w, r)
	if n := strings.TrimSpace(body.DisplayName); n != "" {
		name = n
	}
	if !s.validPlayerWord(w, r, body.SecretWord, body.WordLength) {
		return
	}
	match, err := s.mgr.CreateSinglePlayer(r.Context(), playerID, name, body.SecretWord, body.WordLength, body.Tier)
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"matchId":    match.MatchID,
		"matchState": match.View(playerID),
	})
}

// handleCreateOrJoinMulti enqueues the caller; pairs immediately when an
// opponent of the same word length is waiting.
func (s *Server) handleCreateOrJoinMulti(w http.ResponseWriter, r *http.Request) {
	var body createMultiReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	playerID, name := s.identity(w, r)
	if n := strings.TrimSpace(body.DisplayName); n != "" {
		name = n
	}
	if !s.validPlayerWord(w, r, body.SecretWord, body.WordLength) {
		return
	}
	res, err := s.mgr.CreateOrJoinMultiplayer(r.Context(), playerID, name, body.SecretWord, body.WordLength)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !res.Matched {
		_ = json.NewEncoder(w).Encode(map[string]any{"matched": false})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"matched":    true,
		"matchId":    res.Match.MatchID,
		"matchState": res.Match.View(playerID),
	})
}

// handleMatchState is the polling endpoint. The view is scoped to the
// caller; the opponent's secret stays blank until the match finishes.
func (s *Server) handleMatchState(w http.ResponseWriter, r *http.Request) {
	playerID, _ := s.identity(w, r)
	match, err := s.mgr.State(r.Context(), chi.URLParam(r, "id"), playerID)
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := map[string]any{"matchState": match}
	if match.Phase == game.PhaseFinished {
		if b := s.mgr.Breakdown(match, playerID); b != nil {
			resp["scoreBreakdown"] = b
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleGuess submits one guess for the caller. The word must pass
// dictionary validation before it reaches the engine; invalid words cost
// nothing (no attempt is consumed).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var body guessReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	playerID, _ := s.identity(w, r)
	word := strings.ToLower(strings.TrimSpace(body.Word))
	if word == "" {
		http.Error(w, `{"error":"validation","message":"missing word"}`, http.StatusBadRequest)
		return
	}
	if !s.dict.IsValidWord(r.Context(), word) {
		http.Error(w, `{"error":"not_a_word","message":"not a recognized word"}`, http.StatusBadRequest)
		return
	}
	res, err := s.mgr.SubmitGuess(r.Context(), chi.URLParam(r, "id"), playerID, word)
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeSubmit(w, res, playerID)
}

// handleAITurn advances the computer's turn. Clients call this when the
// tier's turn interval elapses; redundant calls are safe.
func (s *Server) handleAITurn(w http.ResponseWriter, r *http.Request) {
	playerID, _ := s.identity(w, r)
	res, err := s.mgr.TriggerAIGuess(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeSubmit(w, res, playerID)
}

// handleSkipTurn passes the caller's multiplayer turn without a guess.
func (s *Server) handleSkipTurn(w http.ResponseWriter, r *http.Request) {
	playerID, _ := s.identity(w, r)
	match, err := s.mgr.SkipTurn(r.Context(), chi.URLParam(r, "id"), playerID)
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"matchState": match})
}

// handleQuit concedes the match for the caller.
func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	playerID, _ := s.identity(w, r)
	match, err := s.mgr.Quit(r.Context(), chi.URLParam(r, "id"), playerID)
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := map[string]any{"matchState": match}
	if b := s.mgr.Breakdown(match, playerID); b != nil {
		resp["scoreBreakdown"] = b
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleAIInterval reports the polling interval bounds for a tier so
// clients can pace their ai-turn calls.
func (s *Server) handleAIInterval(w http.ResponseWriter, r *http.Request) {
	tier := score.Tier(r.URL.Query().Get("tier"))
	min, max, err := ai.TurnIntervalFor(tier)
	if err != nil {
		http.Error(w, `{"error":"validation","message":"unknown tier"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"tier":          tier,
		"minIntervalMs": min.Milliseconds(),
		"maxIntervalMs": max.Milliseconds(),
	})
}

// handleQueueLeave removes the caller from the matchmaking queue.
func (s *Server) handleQueueLeave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WordLength int `json:"wordLength"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	playerID, _ := s.identity(w, r)
	s.mgr.Queue().Leave(playerID, body.WordLength)
	log.Debug().Str("playerId", playerID).Int("wordLength", body.WordLength).Msg("left matchmaking queue")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleQueueStatus reports queue depth, average wait, and whether the
// caller is currently waiting.
func (s *Server) handleQueueStatus(w http.ResponseWriter, r *http.Request) {
	wordLength, _ := strconv.Atoi(r.URL.Query().Get("wordLength"))
	if !words.SupportedLength(wordLength) {
		http.Error(w, `{"error":"validation","message":"unsupported word length"}`, http.StatusBadRequest)
		return
	}
	playerID, _ := s.identity(w, r)
	st := s.mgr.Queue().Status(wordLength)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"waitingCount":  st.Count,
		"averageWaitMs": st.AverageWaitMs,
		"inQueue":       s.mgr.Queue().Waiting(playerID, wordLength),
	})
}

// ----- shared helpers -----

// writeSubmit renders a guess-submission result scoped to the viewer.
func (s *Server) writeSubmit(w http.ResponseWriter, res game.SubmitResult, viewerID string) {
	_ = json.NewEncoder(w).Encode(submitResp{
		Match:      res.Match.View(viewerID),
		Guess:      res.Guess,
		MatchEnded: res.MatchEnded,
		Breakdown:  res.Breakdown,
	})
}

// validPlayerWord checks length support and dictionary membership for a
// player-chosen secret word, writing the error response itself.
func (s *Server) validPlayerWord(w http.ResponseWriter, r *http.Request, word string, wordLength int) bool {
	if !words.SupportedLength(wordLength) {
		http.Error(w, `{"error":"validation","message":"unsupported word length"}`, http.StatusBadRequest)
		return false
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != wordLength {
		http.Error(w, `{"error":"validation","message":"word length mismatch"}`, http.StatusBadRequest)
		return false
	}
	if !s.dict.IsValidWord(r.Context(), word) {
		http.Error(w, `{"error":"not_a_word","message":"not a recognized word"}`, http.StatusBadRequest)
		return false
	}
	return true
}
