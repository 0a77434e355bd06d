// internal/game/engine.go
//
// Game engine for a single self-play session.
// Responsibilities:
//   - Create new games against a fixed secret.
//   - Score guesses with the membership rule (Score).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Score deliberately does not count repeated letters: a guess letter
//     that occurs anywhere in the secret is Present at every non-matching
//     position it appears in. The solver's required-letter test uses the
//     same membership rule, so the two stay consistent.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// ErrFinished is returned when a guess is played on a finished game.
var ErrFinished = errors.New("game finished")

// New constructs a new game against secret.
// rows caps the number of guesses; 0 leaves the game unbounded.
func New(secret Word, rows int) *Game {
	return &Game{
		ID:     randomID(),
		Secret: secret,
		Rows:   rows,
		Rounds: []Round{},
	}
}

// Play scores a guess, records the round and advances the game state.
//
// State transitions:
//   - If the code is all Correct → Finished = true, Won = true.
//   - Else if Rows > 0 and the number of rounds reaches Rows → Finished = true (loss).
func (g *Game) Play(guess Word) (Code, error) {
	if g.Finished {
		return Code{}, ErrFinished
	}
	code := Score(guess, g.Secret)
	g.Rounds = append(g.Rounds, Round{Guess: guess, Code: code})

	if code.Solved() {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Rounds) >= g.Rows {
		g.Finished = true
	}
	return code, nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score compares guess against secret.
//
// For each position i:
//   - guess[i] == secret[i]            → MarkCorrect
//   - guess[i] occurs anywhere in secret → MarkPresent
//   - otherwise                        → MarkAbsent
func Score(guess, secret Word) Code {
	var c Code
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == secret[i]:
			c[i] = MarkCorrect
		case secret.Contains(guess[i]):
			c[i] = MarkPresent
		default:
			c[i] = MarkAbsent
		}
	}
	return c
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
