package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Session tracks an externally played game: the caller relays feedback from
// somewhere else and asks for the next guess.
type Session struct {
	ID     string
	Model  *Model
	Rounds []game.Round
}

// NewSession returns a session with an empty model.
func NewSession(id string) *Session {
	return &Session{ID: id, Model: NewModel(), Rounds: []game.Round{}}
}

// Suggest returns the next guess consistent with everything applied so far.
func (s *Session) Suggest(dict []game.Word) (game.Word, error) {
	return Select(dict, s.Model)
}

// Apply records one round of external feedback.
func (s *Session) Apply(guess game.Word, code game.Code) {
	s.Model.Update(guess, code)
	s.Rounds = append(s.Rounds, game.Round{Guess: guess, Code: code})
}

// Solved reports whether the last applied round was all correct.
func (s *Session) Solved() bool {
	return len(s.Rounds) > 0 && s.Rounds[len(s.Rounds)-1].Code.Solved()
}
