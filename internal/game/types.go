// internal/game/types.go
//
// Core value types for the Wordle solver.
// Defines:
//   - Word: a validated 5-letter lowercase word.
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Code: the 5-mark feedback for one guess, with its G/Y/X wire form.
//   - Round: a guess paired with the feedback it received.
//   - Game: state for a single self-play game.

package game

import (
	"errors"
	"strings"
)

// WordLen is the fixed number of letters in every word.
const WordLen = 5

var (
	// ErrInvalidWord is returned when a string is not exactly WordLen letters a–z.
	ErrInvalidWord = errors.New("invalid word")
	// ErrMalformedFeedback is returned when a feedback string is not WordLen
	// characters over {G, Y, X}.
	ErrMalformedFeedback = errors.New("malformed feedback")
)

// Word is a 5-letter word stored as lowercase ASCII bytes.
// The zero value is not a valid word.
type Word [WordLen]byte

// ParseWord trims, lowercases and validates s. Only ASCII letters are
// accepted; case folding is done byte-wise so no Unicode letter can fold
// into one.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.TrimSpace(s)
	if len(s) != WordLen {
		return w, ErrInvalidWord
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return w, ErrInvalidWord
		}
		w[i] = c
	}
	return w, nil
}

// MustWord is ParseWord for literals known to be valid; it panics otherwise.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return w
}

// String returns the word in lowercase.
func (w Word) String() string { return string(w[:]) }

// Contains reports whether letter c occurs anywhere in w.
func (w Word) Contains(c byte) bool {
	for i := 0; i < WordLen; i++ {
		if w[i] == c {
			return true
		}
	}
	return false
}

// Mark represents the evaluation result for a single letter in a guess.
// The byte value is the letter used on the wire:
//   - 'G': letter is in the correct position.
//   - 'Y': letter occurs in the secret at a different position.
//   - 'X': letter does not occur in the secret.
type Mark byte

const (
	MarkCorrect Mark = 'G'
	MarkPresent Mark = 'Y'
	MarkAbsent  Mark = 'X'
)

// valid reports whether m is one of the three known marks.
func (m Mark) valid() bool {
	return m == MarkCorrect || m == MarkPresent || m == MarkAbsent
}

// Code is the feedback for one guess, one Mark per position.
type Code [WordLen]Mark

// Solved is the all-correct code.
var Solved = Code{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}

// ParseCode converts the G/Y/X wire form into a Code.
// Lowercase input is accepted; anything else is ErrMalformedFeedback.
func ParseCode(s string) (Code, error) {
	var c Code
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLen {
		return c, ErrMalformedFeedback
	}
	for i := 0; i < WordLen; i++ {
		m := Mark(s[i])
		if !m.valid() {
			return c, ErrMalformedFeedback
		}
		c[i] = m
	}
	return c, nil
}

// String returns the G/Y/X wire form.
func (c Code) String() string {
	var b [WordLen]byte
	for i, m := range c {
		b[i] = byte(m)
	}
	return string(b[:])
}

// Solved reports whether every position is MarkCorrect.
func (c Code) Solved() bool { return c == Solved }

// Round is one guess and the feedback it produced.
type Round struct {
	Guess Word
	Code  Code
}

// Game holds the state of a single game against a fixed secret.
type Game struct {
	ID       string  // Unique game identifier (random hex string).
	Secret   Word    // The solution word.
	Rows     int     // Maximum number of guesses allowed; 0 means unlimited.
	Rounds   []Round // Guesses made so far, in order.
	Finished bool    // True once the game is over (won or lost).
	Won      bool    // True if the game was finished with a win.
}
