// internal/solver/letterset.go
//
// LetterSet is a set over the 26 lowercase letters packed into the low bits of
// a uint32 (bit 0 = 'a'). It backs both the per-position constraints and the
// must-contain set of a State. Being a plain integer it is comparable, so a
// State built from LetterSets hashes the same no matter how it was derived.

package solver

import (
	"math/bits"
	"strings"
)

// LetterSet is a set of letters a–z. The zero value is the empty set.
type LetterSet uint32

// AlphabetSize is the number of letters a LetterSet can hold.
const AlphabetSize = 26

// FullLetterSet holds every letter a–z.
const FullLetterSet LetterSet = 1<<AlphabetSize - 1

// AllLetters returns the full alphabet, the initial constraint of a position.
func AllLetters() LetterSet { return FullLetterSet }

// LettersOf builds a set from a string of lowercase letters.
// Characters outside a–z are ignored.
func LettersOf(s string) LetterSet {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		set = set.With(s[i])
	}
	return set
}

func bit(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return 0
	}
	return 1 << (c - 'a')
}

// Only returns the singleton {c}. Used when a position is confirmed green.
func (s LetterSet) Only(c byte) LetterSet { return bit(c) }

// Without returns s with c removed; a no-op if c is absent.
func (s LetterSet) Without(c byte) LetterSet { return s &^ bit(c) }

// With returns s with c added.
func (s LetterSet) With(c byte) LetterSet { return s | bit(c) }

// Has reports membership of c.
func (s LetterSet) Has(c byte) bool {
	b := bit(c)
	return b != 0 && s&b != 0
}

// Union returns s ∪ o.
func (s LetterSet) Union(o LetterSet) LetterSet { return s | o }

// Minus returns s \ o.
func (s LetterSet) Minus(o LetterSet) LetterSet { return s &^ o }

// SubsetOf reports whether every letter of s is in o.
func (s LetterSet) SubsetOf(o LetterSet) bool { return s&^o == 0 }

// Count returns the number of letters in the set.
func (s LetterSet) Count() int { return bits.OnesCount32(uint32(s)) }

// Empty reports whether the set holds no letters.
func (s LetterSet) Empty() bool { return s == 0 }

// Each calls fn for every letter in ascending order.
func (s LetterSet) Each(fn func(c byte)) {
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		fn(byte('a' + bits.TrailingZeros32(rest)))
	}
}

// String lists the letters in alphabetical order, e.g. "ant".
func (s LetterSet) String() string {
	var b strings.Builder
	b.Grow(s.Count())
	s.Each(func(c byte) { b.WriteByte(c) })
	return b.String()
}
