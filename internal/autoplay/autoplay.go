// internal/autoplay/autoplay.go
//
// Self-play: the solver plays a full game against a known answer.
//
// Loop (until the game is finished):
//   1. Build the State from the feedback gathered so far.
//   2. Ask solver.SelectBestGuess for the next guess.
//   3. Apply it to a game.Game, which scores it with true Wordle marks.
//   4. Fold the marks back into the feedback (feedback.Accumulate).
//
// The transcript records every turn so callers can print or aggregate it.

package autoplay

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Markaronin/wordle-solver/internal/feedback"
	"github.com/Markaronin/wordle-solver/internal/game"
	"github.com/Markaronin/wordle-solver/internal/solver"
	"github.com/Markaronin/wordle-solver/internal/words"
)

// Turn is one played row.
type Turn struct {
	Guess     solver.Word
	Marks     []game.Mark
	Score     float64
	Shortcut  bool
	Remaining int // possible answers before this guess
}

// Transcript is the record of one self-played game.
type Transcript struct {
	GameID string
	Answer solver.Word
	Turns  []Turn
	Won    bool
}

// Rounds is the number of guesses taken.
func (t *Transcript) Rounds() int { return len(t.Turns) }

// Play runs a game for answer using lists. The answer must be guessable.
func Play(ctx context.Context, answer solver.Word, lists *words.Lists, params solver.SearchParams) (*Transcript, error) {
	if !lists.IsAllowed(answer) {
		return nil, fmt.Errorf("answer %s: %w", answer, game.ErrNotAllowed)
	}
	g := game.New(answer, lists)
	tr := &Transcript{GameID: g.ID, Answer: answer}
	var fb solver.Feedback

	for !g.Finished {
		res, err := solver.SelectBestGuess(ctx, solver.FromFeedback(fb), lists.Guesses, lists.Answers, params)
		if err != nil {
			return tr, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
		}
		marks, state, err := g.ApplyGuess(res.Guess)
		if err != nil {
			return tr, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
		}
		tr.Turns = append(tr.Turns, Turn{
			Guess:     res.Guess,
			Marks:     marks,
			Score:     res.Score,
			Shortcut:  res.Shortcut,
			Remaining: len(res.Possible),
		})
		log.Debug().
			Str("game", g.ID).
			Str("guess", res.Guess.String()).
			Str("marks", game.FormatMarks(marks)).
			Int("remaining", len(res.Possible)).
			Str("state", state).
			Msg("autoplay turn")

		if fb, err = feedback.Accumulate(fb, res.Guess, marks); err != nil {
			return tr, err
		}
	}
	tr.Won = g.Won
	return tr, nil
}
