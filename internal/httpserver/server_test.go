package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/robalobadob/wordduel/internal/dict"
	"github.com/robalobadob/wordduel/internal/game"
	"github.com/robalobadob/wordduel/internal/stats"
	"github.com/robalobadob/wordduel/internal/store"
	"github.com/robalobadob/wordduel/internal/words"
)

// newTestServer wires a full server over the in-memory store with the
// offline dictionary, plus a cookie-carrying client so identity sticks
// across requests.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	st := store.NewMemory()
	recorder := stats.NewRecorder(st)
	mgr := game.NewManager(st, dict.Offline{}, recorder, 0)
	srv := httptest.NewServer(New(mgr, dict.Offline{}, recorder, st).Router())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := c.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	resp.Body.Close()
	return resp, out
}

func getJSON(t *testing.T, c *http.Client, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	resp.Body.Close()
	return resp, out
}

func TestHealth(t *testing.T) {
	srv, c := newTestServer(t)
	resp, out := getJSON(t, c, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if out["ok"] != true {
		t.Errorf("body = %v", out)
	}
}

func TestCreateSingleAndGuess(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := postJSON(t, c, srv.URL+"/match/single", map[string]any{
		"secretWord": "crane", "wordLength": 5, "tier": "relaxed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, body = %v", resp.StatusCode, out)
	}
	matchID, _ := out["matchId"].(string)
	if matchID == "" {
		t.Fatalf("no matchId in %v", out)
	}
	ms, _ := out["matchState"].(map[string]any)
	if ms == nil {
		t.Fatal("no matchState")
	}
	// Opponent secret must be blank while the match is active.
	pb, _ := ms["playerB"].(map[string]any)
	if pb == nil || pb["secretWord"] != "" {
		t.Errorf("computer secret leaked: %v", pb)
	}

	resp, out = postJSON(t, c, srv.URL+"/match/"+matchID+"/guess", map[string]any{"word": "slate"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guess status = %d, body = %v", resp.StatusCode, out)
	}
	if out["guessResult"] == nil {
		t.Errorf("no guessResult in %v", out)
	}

	// Polling the state works for the same cookie identity.
	resp, out = getJSON(t, c, srv.URL+"/match/"+matchID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state status = %d", resp.StatusCode)
	}
	if out["matchState"] == nil {
		t.Error("no matchState on poll")
	}
}

func TestCreateSingle_RejectsJunk(t *testing.T) {
	srv, c := newTestServer(t)

	resp, _ := postJSON(t, c, srv.URL+"/match/single", map[string]any{
		"secretWord": "xqzyw", "wordLength": 5, "tier": "relaxed",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("junk secret status = %d, want 400", resp.StatusCode)
	}

	resp, _ = postJSON(t, c, srv.URL+"/match/single", map[string]any{
		"secretWord": "abc", "wordLength": 3, "tier": "relaxed",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unsupported length status = %d, want 400", resp.StatusCode)
	}
}

func TestMatchState_UnknownIs404(t *testing.T) {
	srv, c := newTestServer(t)
	resp, out := getJSON(t, c, srv.URL+"/match/nope-nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 (%v)", resp.StatusCode, out)
	}
}

func TestGuess_OutOfTurnIs409(t *testing.T) {
	srv, c := newTestServer(t)

	_, out := postJSON(t, c, srv.URL+"/match/single", map[string]any{
		"secretWord": "crane", "wordLength": 5, "tier": "deductive",
	})
	matchID, _ := out["matchId"].(string)
	if matchID == "" {
		t.Fatal("no matchId")
	}
	// First guess flips the turn to the computer.
	resp, body := postJSON(t, c, srv.URL+"/match/"+matchID+"/guess", map[string]any{"word": "slate"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guess status = %d, body = %v", resp.StatusCode, body)
	}
	if ended, _ := body["matchEnded"].(bool); ended {
		t.Skip("match ended on the opening guess")
	}
	resp, body = postJSON(t, c, srv.URL+"/match/"+matchID+"/guess", map[string]any{"word": "stare"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second guess status = %d, want 409 (%v)", resp.StatusCode, body)
	}
}

func TestAIInterval(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := getJSON(t, c, srv.URL+"/ai/interval?tier=filtering")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if out["minIntervalMs"].(float64) != 800 || out["maxIntervalMs"].(float64) != 1500 {
		t.Errorf("interval = %v", out)
	}

	resp, _ = getJSON(t, c, srv.URL+"/ai/interval?tier=psychic")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown tier status = %d, want 400", resp.StatusCode)
	}
}

func TestQueueStatus(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := getJSON(t, c, srv.URL+"/queue/status?wordLength=5")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if out["waitingCount"].(float64) != 0 {
		t.Errorf("waitingCount = %v, want 0", out["waitingCount"])
	}
	if out["inQueue"].(bool) {
		t.Error("fresh identity reported in queue")
	}

	resp, _ = getJSON(t, c, srv.URL+"/queue/status?wordLength=9")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unsupported length status = %d, want 400", resp.StatusCode)
	}
}

func TestMultiQueueAndLeave(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := postJSON(t, c, srv.URL+"/match/multi", map[string]any{
		"secretWord": "crane", "wordLength": 5,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("enqueue status = %d, body = %v", resp.StatusCode, out)
	}
	if matched, _ := out["matched"].(bool); matched {
		t.Fatal("matched with empty queue")
	}

	_, st := getJSON(t, c, srv.URL+"/queue/status?wordLength=5")
	if !st["inQueue"].(bool) {
		t.Error("caller not reported waiting after enqueue")
	}

	resp, _ = postJSON(t, c, srv.URL+"/queue/leave", map[string]any{"wordLength": 5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leave status = %d", resp.StatusCode)
	}
	_, st = getJSON(t, c, srv.URL+"/queue/status?wordLength=5")
	if st["inQueue"].(bool) {
		t.Error("still in queue after leave")
	}
}

func TestSignupLoginMe(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := postJSON(t, c, srv.URL+"/auth/signup", map[string]any{
		"username": "tester_1", "password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status = %d, body = %v", resp.StatusCode, out)
	}

	resp, me := getJSON(t, c, srv.URL+"/auth/me")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	if me["username"] != "tester_1" {
		t.Errorf("me = %v", me)
	}

	// Duplicate username is a conflict.
	resp, _ = postJSON(t, c, srv.URL+"/auth/signup", map[string]any{
		"username": "tester_1", "password": "password123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", resp.StatusCode)
	}

	// Wrong password rejected.
	resp, _ = postJSON(t, c, srv.URL+"/auth/login", map[string]any{
		"username": "tester_1", "password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", resp.StatusCode)
	}

	// Logout clears the session; /auth/me becomes 401.
	postJSON(t, c, srv.URL+"/auth/logout", map[string]any{})
	resp, _ = getJSON(t, c, srv.URL+"/auth/me")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", resp.StatusCode)
	}
}

func TestStatsMeAndLeaderboard(t *testing.T) {
	srv, c := newTestServer(t)

	resp, out := getJSON(t, c, srv.URL+"/stats/me")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	if out["gamesPlayed"].(float64) != 0 {
		t.Errorf("fresh identity gamesPlayed = %v", out["gamesPlayed"])
	}

	resp, err := c.Get(srv.URL + "/leaderboard")
	if err != nil {
		t.Fatalf("GET /leaderboard: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard status = %d", resp.StatusCode)
	}
	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("fresh leaderboard has %d rows", len(rows))
	}
}
