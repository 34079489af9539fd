package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordduel/internal/dict"
	"github.com/robalobadob/wordduel/internal/game"
	"github.com/robalobadob/wordduel/internal/httpserver"
	"github.com/robalobadob/wordduel/internal/scheduler"
	"github.com/robalobadob/wordduel/internal/stats"
	"github.com/robalobadob/wordduel/internal/store"
	"github.com/robalobadob/wordduel/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var st store.Store
	if path := os.Getenv("DB_PATH"); path != "" {
		sq, err := store.OpenSQLite(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open sqlite store")
		}
		st = sq
		log.Info().Str("path", path).Msg("using sqlite store")
	} else {
		st = store.NewMemory()
		log.Info().Msg("using in-memory store")
	}

	dc := dict.New(os.Getenv("DICT_API_URL"))
	recorder := stats.NewRecorder(st)

	timeLimit := time.Duration(0)
	if v := os.Getenv("MATCH_TIME_LIMIT_MS"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms > 0 {
			timeLimit = time.Duration(ms) * time.Millisecond
		}
	}
	mgr := game.NewManager(st, dc, recorder, timeLimit)

	sched := scheduler.New(func(matchID string) {
		if _, err := mgr.TriggerAIGuess(context.Background(), matchID); err != nil {
			log.Debug().Err(err).Str("matchId", matchID).Msg("scheduled ai turn skipped")
		}
	})
	defer sched.Stop()
	mgr.SetScheduler(sched)

	srv := httpserver.New(mgr, dc, recorder, st)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordduel server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
