// internal/scheduler/scheduler.go
//
// AI-turn scheduler: one cancelable one-shot timer per match.
//
// Decouples observation from mutation: client polls never advance the
// computer's turn inline; the game manager arms a timer here and the timer
// goroutine fires the advancement callback. The callback itself re-checks
// match phase and turn holder under the match lock, so a timer that
// outlives its match is a harmless no-op.

package scheduler

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Scheduler owns pending AI-turn timers keyed by match id.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	fire   func(matchID string)
	closed bool
}

// New constructs a Scheduler. fire runs on the timer goroutine once per
// scheduled turn; it must tolerate the match having finished in between.
func New(fire func(matchID string)) *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		fire:   fire,
	}
}

// Schedule arms the AI timer for a match. Idempotent: a match with a
// pending timer keeps its original deadline (two rapid polls must not
// produce two guesses).
func (s *Scheduler) Schedule(matchID string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, pending := s.timers[matchID]; pending {
		return
	}
	s.timers[matchID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, matchID)
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return
		}
		log.Debug().Str("matchId", matchID).Msg("ai turn timer fired")
		s.fire(matchID)
	})
}

// Cancel drops a pending timer. No-op for unknown matches.
func (s *Scheduler) Cancel(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[matchID]; ok {
		t.Stop()
		delete(s.timers, matchID)
	}
}

// Stop cancels every pending timer; used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
