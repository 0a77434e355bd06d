package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func mustCode(t *testing.T, s string) game.Code {
	t.Helper()
	c, err := game.ParseCode(s)
	if err != nil {
		t.Fatalf("ParseCode(%q): %v", s, err)
	}
	return c
}

func TestLetterSet(t *testing.T) {
	var s LetterSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has('a'))

	s.Add('r')
	s.Add('a')
	s.Add('r')
	s.Add('!')
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has('a'))
	assert.False(t, s.Has('!'))
	assert.Equal(t, "ar", s.String())

	c := s.Clone()
	c.Add('z')
	assert.Equal(t, "ar", s.String())
	assert.Equal(t, "arz", c.String())
}

func TestModelUpdate(t *testing.T) {
	m := NewModel()
	m.Update(game.MustWord("crane"), mustCode(t, "YGGXG"))

	want := Snapshot{
		MustBe:      [5]string{"", "r", "a", "", "e"},
		MustNotBe:   [5]string{"cn", "n", "n", "n", "n"},
		MustContain: "c",
	}
	if diff := cmp.Diff(want, m.Snapshot()); diff != "" {
		t.Errorf("unexpected model (-want +got)\n%s", diff)
	}
}

func TestModelUpdateIdempotent(t *testing.T) {
	guess, code := game.MustWord("slate"), mustCode(t, "XXGYG")

	once := NewModel()
	once.Update(guess, code)
	twice := NewModel()
	twice.Update(guess, code)
	twice.Update(guess, code)

	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Errorf("second update changed the model (-once +twice)\n%s", diff)
	}
}

func TestModelUpdateMonotonic(t *testing.T) {
	secret := game.MustWord("trace")
	m := NewModel()
	prev := m.Snapshot()
	for _, g := range []string{"crane", "slate", "fuzzy", "react", "trace"} {
		guess := game.MustWord(g)
		m.Update(guess, game.Score(guess, secret))
		cur := m.Snapshot()
		for i := 0; i < game.WordLen; i++ {
			if prev.MustBe[i] != "" {
				assert.Equal(t, prev.MustBe[i], cur.MustBe[i], "pin %d cleared after %s", i, g)
			}
			assert.Subset(t, []byte(cur.MustNotBe[i]), []byte(prev.MustNotBe[i]), "position %d shrank after %s", i, g)
		}
		assert.Subset(t, []byte(cur.MustContain), []byte(prev.MustContain), "must-contain shrank after %s", g)
		prev = cur
	}
}

func TestModelNeverExcludesPinnedLetter(t *testing.T) {
	m := NewModel()
	// Externally produced feedback in the official style: the second E of
	// "speed" is reported absent while another E is correct.
	m.Update(game.MustWord("speed"), mustCode(t, "XXGXX"))
	m.Update(game.MustWord("abide"), mustCode(t, "XXXXG"))

	s := m.Snapshot()
	for i := 0; i < game.WordLen; i++ {
		if s.MustBe[i] != "" {
			assert.NotContains(t, s.MustNotBe[i], s.MustBe[i], "position %d", i)
		}
	}
}

func TestModelExcludesOracleAbsentLettersEverywhere(t *testing.T) {
	d, err := words.Default()
	if err != nil {
		t.Fatal(err)
	}
	list := d.Words()
	if len(list) > 60 {
		list = list[:60]
	}
	// Letters the built-in oracle marks absent are never known present, so
	// they are excluded at every position.
	for _, secret := range list {
		for _, guess := range list {
			code := game.Score(guess, secret)
			m := NewModel()
			m.Update(guess, code)
			for i, mk := range code {
				if mk != game.MarkAbsent {
					continue
				}
				for k := 0; k < game.WordLen; k++ {
					if !m.Positions[k].MustNotBe.Has(guess[i]) {
						t.Fatalf("%s vs %s: %q not excluded at %d", guess, secret, guess[i], k)
					}
				}
			}
			if !m.Admits(secret) {
				t.Fatalf("%s vs %s: model rejects the secret", guess, secret)
			}
		}
	}
}

func TestModelMustContainCapped(t *testing.T) {
	m := NewModel()
	m.Update(game.MustWord("abcde"), mustCode(t, "YYYYY"))
	m.Update(game.MustWord("fghij"), mustCode(t, "YYYYY"))
	assert.Equal(t, maxRequired, m.MustContain.Len())
	assert.Equal(t, "abcde", m.MustContain.String())
}

func TestModelCloneIsIndependent(t *testing.T) {
	m := NewModel()
	m.Update(game.MustWord("crane"), mustCode(t, "YGGXG"))
	c := m.Clone()
	c.Update(game.MustWord("sooty"), mustCode(t, "XXXYX"))

	assert.NotEqual(t, m.Snapshot(), c.Snapshot())
	assert.Equal(t, "c", m.MustContain.String())
	assert.Equal(t, "ct", c.MustContain.String())
}

func TestAdmits(t *testing.T) {
	m := NewModel()
	m.Update(game.MustWord("crane"), mustCode(t, "YGGXG"))

	assert.False(t, m.Admits(game.MustWord("crane")), "C excluded at 0, N excluded everywhere")
	assert.False(t, m.Admits(game.MustWord("slate")), "L is not the pinned R")
	assert.True(t, m.Admits(game.MustWord("trace")))
	assert.False(t, m.Admits(game.MustWord("grape")), "missing required C")
}
