package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// runPlay solves one game, writing the guess and then the code for every
// round to out. hist may be nil.
func runPlay(ctx context.Context, cfg Config, dict *words.Dictionary, hist *history.Store, out io.Writer) error {
	secret, mode, err := chooseSecret(cfg, dict, time.Now())
	if err != nil {
		return err
	}
	opts, err := solveOptions(cfg)
	if err != nil {
		return err
	}
	opts.OnRound = func(n int, r game.Round) {
		fmt.Fprintln(out, strings.ToUpper(r.Guess.String()))
		fmt.Fprintln(out, renderCode(r.Code, cfg.Color))
	}

	started := time.Now()
	res, err := solver.Solve(ctx, dict.Words(), secret, opts)
	if err != nil {
		return fmt.Errorf("solve %s: %w", secret, err)
	}
	log.Info().Str("secret", secret.String()).Str("mode", mode).Int("rounds", len(res.Rounds)).Msg("solved")

	if hist != nil {
		if err := hist.InsertRun(ctx, history.NewRun(res.GameID, secret, mode, res.Rounds, started)); err != nil {
			log.Warn().Err(err).Msg("record run")
		}
	}
	return nil
}

// chooseSecret picks the secret from -secret, -mode=daily or a seeded random
// draw, and names the mode used.
func chooseSecret(cfg Config, dict *words.Dictionary, now time.Time) (game.Word, string, error) {
	if cfg.Secret != "" {
		w, err := game.ParseWord(cfg.Secret)
		if err != nil {
			return game.Word{}, "", fmt.Errorf("secret %q: %w", cfg.Secret, err)
		}
		if !dict.Contains(w) {
			return game.Word{}, "", fmt.Errorf("secret %q is not in the dictionary", cfg.Secret)
		}
		return w, "fixed", nil
	}
	if cfg.Mode == "daily" {
		return daily.Secret(dict, now, cfg.DailySalt), "daily", nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	return dict.Random(rand.New(rand.NewSource(seed))), "random", nil
}

// solveOptions maps the shared flags onto solver options.
func solveOptions(cfg Config) (solver.Options, error) {
	opts := solver.Options{MaxRounds: cfg.MaxRounds}
	if cfg.FirstGuess != "" {
		w, err := game.ParseWord(cfg.FirstGuess)
		if err != nil {
			return opts, fmt.Errorf("first guess %q: %w", cfg.FirstGuess, err)
		}
		opts.FirstGuess = &w
	}
	return opts, nil
}

// renderCode returns the G/Y/X form, optionally as coloured tiles.
func renderCode(c game.Code, colored bool) string {
	if !colored {
		return c.String()
	}
	var b strings.Builder
	for _, m := range c {
		switch m {
		case game.MarkCorrect:
			b.WriteString(color.Ize(color.Green, string(byte(m))))
		case game.MarkPresent:
			b.WriteString(color.Ize(color.Yellow, string(byte(m))))
		default:
			b.WriteString(color.Ize(color.Gray, string(byte(m))))
		}
	}
	return b.String()
}
