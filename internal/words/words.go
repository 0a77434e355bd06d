// internal/words/words.go
//
// Provides dictionary loading for the solver.
//
// Responsibilities:
//   - Read whitespace-separated word lists from a file or any io.Reader.
//   - Validate every token (exactly 5 letters a–z, lowercased).
//   - Fall back to the embedded default list when no file is configured.
//   - Pick secrets: seeded uniform random or by index.
//
// Input format:
//   - Tokens are separated by any whitespace, several per line are fine.
//   - A line starting with '#' is a comment.
//   - Tokens of the wrong length or with non-letters are skipped with a
//     warning, or rejected with ErrMalformedWord in strict mode.
//
// A Dictionary is read-only once built and may be shared across goroutines.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var (
	// ErrEmpty is returned when a source yields no valid words.
	ErrEmpty = errors.New("words: dictionary is empty")
	// ErrMalformedWord is returned in strict mode for a token that is not a 5-letter word.
	ErrMalformedWord = errors.New("words: malformed word")
)

// Dictionary is an ordered, read-only list of words.
type Dictionary struct {
	words []game.Word
	set   map[game.Word]struct{}
}

// New builds a Dictionary from already validated words, keeping their order.
// An empty list is ErrEmpty.
func New(list []game.Word) (*Dictionary, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	d := &Dictionary{
		words: append([]game.Word(nil), list...),
		set:   make(map[game.Word]struct{}, len(list)),
	}
	for _, w := range list {
		d.set[w] = struct{}{}
	}
	return d, nil
}

// Read parses a word list from r. Lines may be of any length.
// With strict set, the first malformed token aborts with ErrMalformedWord.
func Read(r io.Reader, strict bool) (*Dictionary, error) {
	var out []game.Word
	skipped := 0

	br := bufio.NewReader(r)
	line := 0
	for {
		text, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, fmt.Errorf("read words: %w", rerr)
		}
		if text == "" && rerr == io.EOF {
			break
		}
		line++
		text = strings.TrimSpace(text)
		if text != "" && !strings.HasPrefix(text, "#") {
			for _, tok := range strings.Fields(text) {
				w, err := game.ParseWord(tok)
				if err != nil {
					if strict {
						return nil, fmt.Errorf("%w %q on line %d", ErrMalformedWord, tok, line)
					}
					log.Warn().Str("token", tok).Int("line", line).Msg("skipping malformed word")
					skipped++
					continue
				}
				out = append(out, w)
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	if skipped > 0 {
		log.Info().Int("kept", len(out)).Int("skipped", skipped).Msg("word list loaded with skips")
	}
	return New(out)
}

// Load reads a word list from the file at path.
// A missing or unreadable file is an error; there is no silent fallback.
func Load(path string, strict bool) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	d, err := Read(f, strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the embedded word list, parsed once on first use.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		f, err := assets.DefaultWords()
		if err != nil {
			defaultErr = err
			return
		}
		defer f.Close()
		defaultDict, defaultErr = Read(f, true)
	})
	return defaultDict, defaultErr
}

// Words returns the words in dictionary order. The slice must not be modified.
func (d *Dictionary) Words() []game.Word { return d.words }

// Len returns the number of words, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// At returns the i-th word.
func (d *Dictionary) At(i int) game.Word { return d.words[i] }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w game.Word) bool {
	_, ok := d.set[w]
	return ok
}

// Random returns a uniformly chosen word. Pass a seeded rng for
// reproducible picks.
func (d *Dictionary) Random(rng *rand.Rand) game.Word {
	return d.words[rng.Intn(len(d.words))]
}
