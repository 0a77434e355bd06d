package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrNoConvergence is returned when the round limit runs out before the
// secret is found.
var ErrNoConvergence = errors.New("solver did not converge")

// Options tunes a Solve run. The zero value is a plain self-play game.
type Options struct {
	// FirstGuess, when set, is played in round one instead of the selector's pick.
	FirstGuess *game.Word
	// MaxRounds bounds the game; 0 means len(dict).
	MaxRounds int
	// OnRound is called after every scored round.
	OnRound func(n int, r game.Round)
}

// Result is the outcome of a finished Solve.
type Result struct {
	GameID string
	Secret game.Word
	Rounds []game.Round
}

// Solve plays one game against secret: select, score, update, until the
// feedback is all correct.
//
// Every non-final round disqualifies its own guess from later selection, and
// a secret present in dict always stays admitted, so a dictionary containing
// the secret converges within len(dict) rounds.
func Solve(ctx context.Context, dict []game.Word, secret game.Word, opts Options) (Result, error) {
	limit := opts.MaxRounds
	if limit <= 0 {
		limit = len(dict)
		if opts.FirstGuess != nil {
			limit++
		}
	}
	g := game.New(secret, limit)
	m := NewModel()
	res := Result{GameID: g.ID, Secret: secret}

	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n := len(g.Rounds) + 1

		var guess game.Word
		if n == 1 && opts.FirstGuess != nil {
			guess = *opts.FirstGuess
		} else {
			w, err := Select(dict, m)
			if err != nil {
				return res, fmt.Errorf("round %d: %w", n, err)
			}
			guess = w
		}

		code, err := g.Play(guess)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", n, err)
		}
		m.Update(guess, code)

		r := game.Round{Guess: guess, Code: code}
		res.Rounds = append(res.Rounds, r)
		log.Debug().
			Str("game", g.ID).
			Int("round", n).
			Str("guess", guess.String()).
			Str("code", code.String()).
			Msg("round scored")
		if opts.OnRound != nil {
			opts.OnRound(n, r)
		}
	}

	if !g.Won {
		return res, fmt.Errorf("%w after %d rounds", ErrNoConvergence, len(g.Rounds))
	}
	return res, nil
}
