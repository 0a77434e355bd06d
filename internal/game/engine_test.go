package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		guess, secret string
		want          string
	}{
		{"arise", "raise", "YYGGG"},
		{"raise", "raise", "GGGGG"},
		{"crane", "trace", "YGGXG"},
		{"slate", "trace", "XXGYG"},
		{"fuzzy", "trace", "XXXXX"},
		// Repeated guess letters are not count-limited: the single E in
		// "cable" marks both non-matching Es in "eerie" as present.
		{"eerie", "cable", "YYXXG"},
		{"geese", "those", "XYYGG"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.secret, func(t *testing.T) {
			got := Score(MustWord(tt.guess), MustWord(tt.secret))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestScoreSelfIsSolved(t *testing.T) {
	for _, s := range []string{"crane", "eerie", "mamma", "zzzzz"} {
		w := MustWord(s)
		assert.True(t, Score(w, w).Solved(), s)
	}
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("  CRANE\n")
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())

	for _, bad := range []string{"", "cran", "cranes", "cr4ne", "crané", "\u212Arane", "cr\u0130ne"} {
		_, err := ParseWord(bad)
		assert.ErrorIs(t, err, ErrInvalidWord, bad)
	}
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("gyxGG")
	require.NoError(t, err)
	assert.Equal(t, Code{MarkCorrect, MarkPresent, MarkAbsent, MarkCorrect, MarkCorrect}, c)
	assert.Equal(t, "GYXGG", c.String())

	for _, bad := range []string{"", "GGGG", "GGGGGG", "GGBGG", "G Y X"} {
		_, err := ParseCode(bad)
		assert.ErrorIs(t, err, ErrMalformedFeedback, bad)
	}
}

func TestGamePlay(t *testing.T) {
	g := New(MustWord("trace"), 0)
	assert.Equal(t, "playing", g.State())
	assert.Len(t, g.ID, 16)

	code, err := g.Play(MustWord("crane"))
	require.NoError(t, err)
	assert.Equal(t, "YGGXG", code.String())
	assert.False(t, g.Finished)

	code, err = g.Play(MustWord("trace"))
	require.NoError(t, err)
	assert.True(t, code.Solved())
	assert.Equal(t, "won", g.State())
	assert.Len(t, g.Rounds, 2)

	_, err = g.Play(MustWord("trace"))
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGameRowsLimit(t *testing.T) {
	g := New(MustWord("trace"), 2)
	_, err := g.Play(MustWord("crane"))
	require.NoError(t, err)
	_, err = g.Play(MustWord("slate"))
	require.NoError(t, err)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Equal(t, "lost", g.State())
}
