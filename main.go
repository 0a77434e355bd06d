// Command go-solver plays Wordle against itself.
//
//	go-solver [play|bench|serve] [flags]
//
// play (default) picks a secret and prints each round's guess and feedback
// code, exiting 0 once the code is GGGGG. bench solves every dictionary word
// and prints the round distribution. serve exposes the solver over HTTP.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()

	cmd, cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("bad arguments")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := loadDictionary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	var hist *history.Store
	if cfg.DBPath != "" {
		db, err := history.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open history db")
		}
		defer db.Close()
		if err := history.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate history db")
		}
		hist = history.NewStore(db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd {
	case "play":
		err = runPlay(ctx, cfg, dict, hist, os.Stdout)
	case "bench":
		err = runBench(ctx, cfg, dict, os.Stdout, os.Stderr)
	case "serve":
		srv := httpserver.New(httpserver.Config{
			ClientOrigin: cfg.ClientOrigin,
			JWTSecret:    cfg.JWTSecret,
			DailySalt:    cfg.DailySalt,
		}, dict, store.NewMemoryStore(), hist)
		log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting go-solver")
		err = srv.Start(":" + cfg.Port)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("exited")
	}
}

// loadDictionary reads -words_file, or the embedded list when it is empty.
func loadDictionary(cfg Config) (*words.Dictionary, error) {
	if cfg.WordsFile == "" {
		return words.Default()
	}
	return words.Load(cfg.WordsFile, cfg.Strict)
}
