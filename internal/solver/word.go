// internal/solver/word.go
//
// Word is the fixed five-letter value every list, guess and answer is made of.
// Words are plain arrays so they compare with == and can sit inside map keys.

package solver

import (
	"errors"
	"fmt"
)

// WordLength is the number of letters in every word.
const WordLength = 5

// ErrInvalidWordFormat is returned (wrapped in *WordError) when text is not
// exactly five lowercase letters a–z.
var ErrInvalidWordFormat = errors.New("invalid word format")

// WordError reports which text failed to parse and why.
type WordError struct {
	Text   string
	Reason string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidWordFormat, e.Text, e.Reason)
}

func (e *WordError) Unwrap() error { return ErrInvalidWordFormat }

// Word is an immutable sequence of five letters.
type Word [WordLength]byte

// ParseWord validates text and constructs a Word.
// Only lowercase ASCII letters are accepted; callers normalise case first.
func ParseWord(text string) (Word, error) {
	var w Word
	if len(text) != WordLength {
		return w, &WordError{Text: text, Reason: fmt.Sprintf("length %d, want %d", len(text), WordLength)}
	}
	for i := 0; i < WordLength; i++ {
		c := text[i]
		if c < 'a' || c > 'z' {
			return Word{}, &WordError{Text: text, Reason: fmt.Sprintf("character %q at position %d is not a-z", c, i)}
		}
		w[i] = c
	}
	return w, nil
}

// MustParseWord is ParseWord for literals; it panics on bad input.
func MustParseWord(text string) Word {
	w, err := ParseWord(text)
	if err != nil {
		panic(err)
	}
	return w
}

// LetterAt returns the letter at position i (0-indexed).
func (w Word) LetterAt(i int) byte { return w[i] }

// Contains reports whether c appears anywhere in the word.
func (w Word) Contains(c byte) bool {
	for _, x := range w {
		if x == c {
			return true
		}
	}
	return false
}

// Letters returns the set of distinct letters in the word.
func (w Word) Letters() LetterSet {
	var s LetterSet
	for _, c := range w {
		s = s.With(c)
	}
	return s
}

func (w Word) String() string { return string(w[:]) }

// Strings converts words back to their text form, preserving order.
func Strings(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.String()
	}
	return out
}
