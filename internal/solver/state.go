// internal/solver/state.go
//
// State is the accumulated knowledge about the hidden answer:
//   - Positions[i]: letters still possible at position i.
//   - MustContain:  letters confirmed present somewhere in the answer.
//
// Along a derivation chain position sets only shrink and MustContain only
// grows. State is a comparable value; two states are equal iff all six sets
// are equal, which makes it usable directly as a map key.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContradictoryFeedback marks feedback that says a letter is both absent
// (grey) and present (green/yellow), or yellow where it is also green.
var ErrContradictoryFeedback = errors.New("contradictory feedback")

// Feedback is the externally supplied knowledge a search starts from.
type Feedback struct {
	// Greens holds the confirmed letter per position, 0 when unknown.
	Greens [WordLength]byte
	// Yellows holds, per position, letters seen yellow at that position.
	Yellows [WordLength]LetterSet
	// Greys holds letters known to be absent from the answer.
	Greys LetterSet
}

// Present returns every letter the feedback marks green or yellow.
func (f Feedback) Present() LetterSet {
	var s LetterSet
	for i := 0; i < WordLength; i++ {
		s = s.With(f.Greens[i]).Union(f.Yellows[i])
	}
	return s
}

// Validate rejects feedback that contradicts itself. FromFeedback does not
// call it; boundary code does, before a search starts.
func (f Feedback) Validate() error {
	for i, g := range f.Greens {
		if g == 0 {
			continue
		}
		if g < 'a' || g > 'z' {
			return fmt.Errorf("green at position %d: %q is not a-z", i+1, g)
		}
		if f.Yellows[i].Has(g) {
			return fmt.Errorf("%w: %q is both green and yellow at position %d", ErrContradictoryFeedback, g, i+1)
		}
	}
	if both := f.Present() & f.Greys; !both.Empty() {
		return fmt.Errorf("%w: letters %q are grey and also green or yellow", ErrContradictoryFeedback, both.String())
	}
	return nil
}

// State is the constraint state used to test and filter candidate answers.
type State struct {
	Positions   [WordLength]LetterSet
	MustContain LetterSet
}

// NewState returns the state with no knowledge: every letter everywhere.
func NewState() State {
	var s State
	for i := range s.Positions {
		s.Positions[i] = AllLetters()
	}
	return s
}

// FromFeedback builds the starting state. Rules are applied in a fixed order:
// greens, then yellows, then greys. Contradictions are not reconciled here.
func FromFeedback(f Feedback) State {
	s := NewState()
	for i, g := range f.Greens {
		if g != 0 {
			s.Positions[i] = s.Positions[i].Only(g)
		}
	}
	for i, ys := range f.Yellows {
		s.Positions[i] = s.Positions[i].Minus(ys)
		s.MustContain = s.MustContain.Union(ys)
	}
	for i := range s.Positions {
		s.Positions[i] = s.Positions[i].Minus(f.Greys)
	}
	return s
}

// Derive returns the state produced by revealing the feedback for guess
// against answer, layered on top of s. Each position is judged on its own:
//
//   - guess[i] == answer[i]: position i is restricted to that letter;
//   - answer contains guess[i] elsewhere: the letter is excluded from
//     position i and added to MustContain;
//   - otherwise the letter is excluded from all five positions.
//
// Repeated letters are not arbitrated the way the game does it (the number of
// yellow marks is not bounded by the letter's count in the answer), so a
// guess with a repeated letter may be credited with slightly stronger
// feedback than a real game would give. The result always admits answer.
func (s State) Derive(guess, answer Word) State {
	next := s
	for i := 0; i < WordLength; i++ {
		c := guess[i]
		switch {
		case c == answer[i]:
			next.Positions[i] = next.Positions[i].Only(c)
		case answer.Contains(c):
			next.Positions[i] = next.Positions[i].Without(c)
			next.MustContain = next.MustContain.With(c)
		default:
			for j := range next.Positions {
				next.Positions[j] = next.Positions[j].Without(c)
			}
		}
	}
	return next
}

// Matches reports whether word is consistent with s: every must-contain
// letter appears in word and each letter is allowed at its position.
func (s State) Matches(word Word) bool {
	if !s.MustContain.SubsetOf(word.Letters()) {
		return false
	}
	for i, c := range word {
		if !s.Positions[i].Has(c) {
			return false
		}
	}
	return true
}

// String renders the state compactly, e.g. "[*|*|^a|^nt|^t] +ant".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.Positions {
		if i > 0 {
			b.WriteByte('|')
		}
		switch {
		case p == FullLetterSet:
			b.WriteByte('*')
		case p.Count() > AlphabetSize/2:
			b.WriteByte('^')
			b.WriteString(FullLetterSet.Minus(p).String())
		default:
			b.WriteString(p.String())
		}
	}
	b.WriteByte(']')
	if !s.MustContain.Empty() {
		b.WriteString(" +")
		b.WriteString(s.MustContain.String())
	}
	return b.String()
}
