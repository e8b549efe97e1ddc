// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Parse line-oriented word lists strictly: a malformed line is an error
//     naming the source and line, never silently dropped.
//   - Resolve the guess and answer lists from files or embedded defaults.
//   - Fingerprint the lists so persisted results can be tied to them.
//
// Resolution (LoadLists):
//   1. If both Sources.Answers and Sources.Guesses are set,
//      load answers from the first and guesses from the second.
//   2. If only one of them is set,
//      load that file and use it for both answers and guesses.
//   3. If neither is set,
//      fall back to the embedded assets (answers.txt, allowed.txt).
//
// The guess list always contains every answer: answers missing from it are
// appended in answer order.

package words

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/Markaronin/wordle-solver/assets"
	"github.com/Markaronin/wordle-solver/internal/solver"
)

// LineError reports a malformed line. It unwraps to the underlying
// *solver.WordError and therefore to solver.ErrInvalidWordFormat.
type LineError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Sources names the files to load; empty fields select the fallbacks.
type Sources struct {
	Answers string
	Guesses string
}

// Lists holds the two ordered word lists a search consumes.
type Lists struct {
	Guesses []solver.Word
	Answers []solver.Word

	allowed map[solver.Word]struct{}
}

// Parse reads one word per line from r. Surrounding whitespace is trimmed
// and letters are lowercased; blank lines and lines starting with '#' are
// skipped; repeated words keep their first position.
func Parse(r io.Reader, source string) ([]solver.Word, error) {
	var out []solver.Word
	seen := make(map[solver.Word]struct{})
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.ToLower(strings.TrimSpace(sc.Text()))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w, err := solver.ParseWord(text)
		if err != nil {
			return nil, &LineError{Source: source, Line: line, Text: sc.Text(), Err: err}
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return out, nil
}

// Load reads a word list file.
func Load(path string) ([]solver.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

func loadEmbedded(name string) ([]solver.Word, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, "embedded:"+name)
}

// LoadLists resolves both lists from src.
func LoadLists(src Sources) (*Lists, error) {
	var answers, guesses []solver.Word
	var err error

	switch {
	// Case 1: both lists provided
	case src.Answers != "" && src.Guesses != "":
		if answers, err = Load(src.Answers); err != nil {
			return nil, err
		}
		if guesses, err = Load(src.Guesses); err != nil {
			return nil, err
		}

	// Case 2: only guesses provided → use for both
	case src.Guesses != "":
		if guesses, err = Load(src.Guesses); err != nil {
			return nil, err
		}
		answers = guesses

	// Case 2b: only answers provided → guess from the answers
	case src.Answers != "":
		if answers, err = Load(src.Answers); err != nil {
			return nil, err
		}
		guesses = answers

	// Case 3: fallback to embedded defaults
	default:
		if answers, err = loadEmbedded(assets.AnswersFile); err != nil {
			return nil, err
		}
		if guesses, err = loadEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	return New(guesses, answers), nil
}

// New builds Lists from already parsed words, appending to the guess list
// every answer it lacks.
func New(guesses, answers []solver.Word) *Lists {
	l := &Lists{
		Answers: answers,
		allowed: make(map[solver.Word]struct{}, len(guesses)+len(answers)),
	}
	merged := make([]solver.Word, 0, len(guesses)+len(answers))
	for _, group := range [][]solver.Word{guesses, answers} {
		for _, w := range group {
			if _, ok := l.allowed[w]; ok {
				continue
			}
			l.allowed[w] = struct{}{}
			merged = append(merged, w)
		}
	}
	l.Guesses = merged
	return l
}

// IsAllowed reports whether w may be guessed.
func (l *Lists) IsAllowed(w solver.Word) bool {
	_, ok := l.allowed[w]
	return ok
}

// Stats returns counts of loaded words: (answers, guesses).
func (l *Lists) Stats() (answersCount int, guessesCount int) {
	return len(l.Answers), len(l.Guesses)
}

// Fingerprint is a hex BLAKE2b-256 digest of both lists, in order.
func (l *Lists) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	for _, w := range l.Guesses {
		h.Write(w[:])
	}
	// Separator outside the a–z alphabet.
	h.Write([]byte{0})
	for _, w := range l.Answers {
		h.Write(w[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
