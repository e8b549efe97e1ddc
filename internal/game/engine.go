// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with the standard six rows.
//   - Validate and apply guesses (finished check, allowed list).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Words arrive already parsed (solver.Word), so length/alphabet checks
//     happened at the boundary.
//   - A nil Dictionary allows every word.
//   - randomID() is a compact hex identifier for correlating games in logs.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Markaronin/wordle-solver/internal/solver"
)

const defaultRows = 6

var (
	ErrFinished   = errors.New("game finished")
	ErrNotAllowed = errors.New("not in word list")
	ErrBadMarks   = errors.New("invalid marks")
)

// New constructs a new game instance for answer.
func New(answer solver.Word, dict Dictionary) *Game {
	return &Game{
		ID:      randomID(),
		Answer:  answer,
		Rows:    defaultRows,
		Guesses: []solver.Word{},
		dict:    dict,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the per‑letter marks, the new state string ("playing"/"won"/"lost"), or an error.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess solver.Word) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	if g.dict != nil && !g.dict.IsAllowed(guess) {
		return nil, g.State(), fmt.Errorf("%w: %s", ErrNotAllowed, guess)
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)
	g.Marks = append(g.Marks, marks)

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non‑hit) answer letters by letter index.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
func Score(answer, guess solver.Word) []Mark {
	res := make([]Mark, solver.WordLength)
	var counts [solver.AlphabetSize]int

	for i := 0; i < solver.WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < solver.WordLength; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// ParseMarks reads a compact five-character pattern: g (hit), y (present),
// and x, '.', '-' or '_' (miss). Case-insensitive.
func ParseMarks(s string) ([]Mark, error) {
	if len(s) != solver.WordLength {
		return nil, fmt.Errorf("%w: %q has %d characters, want %d", ErrBadMarks, s, len(s), solver.WordLength)
	}
	out := make([]Mark, solver.WordLength)
	for i, r := range strings.ToLower(s) {
		switch r {
		case 'g':
			out[i] = MarkHit
		case 'y':
			out[i] = MarkPresent
		case 'x', '.', '-', '_':
			out[i] = MarkMiss
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadMarks, r, i+1)
		}
	}
	return out, nil
}

// FormatMarks is the inverse of ParseMarks, using g, y and '.'.
func FormatMarks(marks []Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case MarkHit:
			b.WriteByte('g')
		case MarkPresent:
			b.WriteByte('y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// allHit returns true if all marks are MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
