// Package solver holds the constraint model, the candidate selector and the
// self-play loop that drives them against a game.
//
// A Model accumulates everything learned from feedback so far:
//   - per position, an optional pinned letter (MustBe) and a set of letters
//     ruled out at that position (MustNotBe);
//   - a set of letters known to occur somewhere in the word (MustContain).
//
// Facts are only ever added. A pinned letter is never cleared and the sets
// only grow.
package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// maxRequired caps MustContain: a 5-letter word has at most 5 distinct letters.
const maxRequired = game.WordLen

// Position holds the restrictions for one letter slot.
type Position struct {
	MustBe    byte // pinned letter, 0 when unknown
	MustNotBe LetterSet
}

// Model is the accumulated constraint state for one game.
// The zero value is an empty model.
type Model struct {
	Positions   [game.WordLen]Position
	MustContain LetterSet
}

// NewModel returns an empty model.
func NewModel() *Model { return &Model{} }

// Update folds one round of feedback into the model.
//
// Correct pins the letter. Absent rules the letter out at every position.
// Present adds the letter to MustContain and rules it out at this position
// only.
//
// An Absent letter that is also known to be in the word (pinned, required, or
// marked Correct/Present elsewhere in the same code) is ruled out at its own
// position only. The built-in Score never produces such codes; feedback
// relayed from a game that counts repeated letters does.
//
// Pins are applied before exclusions so the result does not depend on the
// order positions are visited in.
func (m *Model) Update(guess game.Word, code game.Code) {
	var seen LetterSet
	for i, mark := range code {
		switch mark {
		case game.MarkCorrect:
			m.Positions[i].MustBe = guess[i]
			seen.Add(guess[i])
		case game.MarkPresent:
			seen.Add(guess[i])
		}
	}
	for i, mark := range code {
		c := guess[i]
		switch mark {
		case game.MarkAbsent:
			if seen.Has(c) || m.known(c) {
				m.exclude(i, c)
				continue
			}
			for k := range m.Positions {
				m.exclude(k, c)
			}
		case game.MarkPresent:
			if m.MustContain.Len() < maxRequired || m.MustContain.Has(c) {
				m.MustContain.Add(c)
			}
			m.exclude(i, c)
		}
	}
}

// known reports whether c is pinned somewhere or required.
func (m *Model) known(c byte) bool {
	if m.MustContain.Has(c) {
		return true
	}
	for i := range m.Positions {
		if m.Positions[i].MustBe == c {
			return true
		}
	}
	return false
}

// exclude adds c to MustNotBe at position k unless k is pinned to c.
func (m *Model) exclude(k int, c byte) {
	p := &m.Positions[k]
	if p.MustBe == c {
		return
	}
	p.MustNotBe.Add(c)
}

// Admits reports whether w satisfies every constraint in the model.
//
// Positions are checked 0..4 and the first violation short-circuits; the
// required letters are checked last by simple membership.
func (m *Model) Admits(w game.Word) bool {
	for i := range m.Positions {
		p := &m.Positions[i]
		if p.MustNotBe.Has(w[i]) {
			return false
		}
		if p.MustBe != 0 && p.MustBe != w[i] {
			return false
		}
	}
	for _, c := range m.MustContain.Letters() {
		if !w.Contains(c) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := &Model{MustContain: m.MustContain.Clone()}
	for i := range m.Positions {
		c.Positions[i] = Position{
			MustBe:    m.Positions[i].MustBe,
			MustNotBe: m.Positions[i].MustNotBe.Clone(),
		}
	}
	return c
}

// Snapshot is a plain, comparable view of a Model, suitable for JSON.
type Snapshot struct {
	MustBe      [game.WordLen]string `json:"mustBe"`    // "" when unknown
	MustNotBe   [game.WordLen]string `json:"mustNotBe"` // alphabetical letters
	MustContain string               `json:"mustContain"`
}

// Snapshot returns the model's current state as a Snapshot.
func (m *Model) Snapshot() Snapshot {
	var s Snapshot
	for i := range m.Positions {
		p := &m.Positions[i]
		if p.MustBe != 0 {
			s.MustBe[i] = string(p.MustBe)
		}
		s.MustNotBe[i] = p.MustNotBe.String()
	}
	s.MustContain = m.MustContain.String()
	return s
}
