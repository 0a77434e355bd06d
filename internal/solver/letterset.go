package solver

import (
	"github.com/bits-and-blooms/bitset"
)

const alphabet = 26

// LetterSet is a set of lowercase ASCII letters. The zero value is empty and
// ready to use. Bytes outside a–z are never members.
type LetterSet struct {
	bits *bitset.BitSet
}

// Add inserts c. Adding a letter twice is a no-op.
func (s *LetterSet) Add(c byte) {
	if c < 'a' || c > 'z' {
		return
	}
	if s.bits == nil {
		s.bits = bitset.New(alphabet)
	}
	s.bits.Set(uint(c - 'a'))
}

// Has reports whether c is in the set.
func (s *LetterSet) Has(c byte) bool {
	if s.bits == nil || c < 'a' || c > 'z' {
		return false
	}
	return s.bits.Test(uint(c - 'a'))
}

// Len returns the number of distinct letters.
func (s *LetterSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Letters returns the members in alphabetical order.
func (s *LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, byte('a'+i))
	}
	return out
}

// String returns the members as an alphabetical string, e.g. "aer".
func (s *LetterSet) String() string { return string(s.Letters()) }

// Clone returns a copy that shares no storage with s.
func (s *LetterSet) Clone() LetterSet {
	if s.bits == nil {
		return LetterSet{}
	}
	return LetterSet{bits: s.bits.Clone()}
}
