// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/Markaronin/wordle-solver/internal/solver"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or all its copies are
//                already accounted for).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Dictionary decides which words may be played as guesses.
type Dictionary interface {
	IsAllowed(w solver.Word) bool
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string        // Unique game identifier (random hex string).
	Answer   solver.Word   // The solution word.
	Rows     int           // Maximum number of guesses allowed (typically 6).
	Guesses  []solver.Word // Guesses made so far.
	Marks    [][]Mark      // Marks per guess, parallel to Guesses.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game was finished with a win.

	dict Dictionary
}
