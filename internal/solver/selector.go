package solver

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrNoCandidate is returned when no dictionary word satisfies the model.
// Either the model is inconsistent or the dictionary lacks the secret; the
// caller must not retry with the same state.
var ErrNoCandidate = errors.New("no candidate found")

// Select returns the first word in dict, in dictionary order, admitted by m.
// Neither dict nor m is modified.
func Select(dict []game.Word, m *Model) (game.Word, error) {
	for _, w := range dict {
		if m.Admits(w) {
			return w, nil
		}
	}
	return game.Word{}, ErrNoCandidate
}

// Candidates returns the words in dict admitted by m, in dictionary order.
// limit <= 0 returns all of them.
func Candidates(dict []game.Word, m *Model, limit int) []game.Word {
	out := []game.Word{}
	for _, w := range dict {
		if !m.Admits(w) {
			continue
		}
		out = append(out, w)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Count returns how many words in dict are admitted by m.
func Count(dict []game.Word, m *Model) int {
	n := 0
	for _, w := range dict {
		if m.Admits(w) {
			n++
		}
	}
	return n
}
