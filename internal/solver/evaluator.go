// internal/solver/evaluator.go
//
// Guess selection. Every allowed guess is played, in simulation, against every
// still-possible answer; the resulting State is filtered against the possible
// answers and the guess is scored by the mean number of *other* candidates
// left standing. Lower is better; ties go to the earlier guess.
//
// The remaining-count for a derived State is memoised for the whole call:
// different (guess, answer) pairs very often land on the same State.

package solver

import (
	"cmp"
	"context"
	"errors"
	"slices"
)

// ErrNoCandidates is returned when no answer is consistent with the state.
var ErrNoCandidates = errors.New("no candidate answers match the feedback")

// shortcutBelow is the possible-answer count under which the first candidate
// is returned without scoring.
const shortcutBelow = 3

// GuessScore is the score of one guess; lower is better.
type GuessScore struct {
	Guess Word
	Score float64
}

// Result is the outcome of SelectBestGuess.
type Result struct {
	Guess Word
	// Score is the expected number of undetermined candidates after Guess.
	// Zero when Shortcut is set.
	Score float64
	// Shortcut is set when fewer than three answers remained and the first
	// was returned without scoring.
	Shortcut bool
	// Possible is the filtered answer list the search ran against.
	Possible []Word
	// Scores holds every guess's score in guess order when
	// SearchParams.RecordScores is set.
	Scores []GuessScore
	// Derivations and CacheHits describe the work done.
	Derivations int
	CacheHits   int
}

// SearchParams tunes SelectBestGuess. The zero value is ready to use.
type SearchParams struct {
	RecordScores bool
	// Progress, if set, is called after each guess has been scored.
	Progress func(done, total int)
}

// SelectBestGuess picks the guess from guesses that minimises the expected
// number of remaining candidates among the answers consistent with state.
//
// It fails with ErrNoCandidates when no answer matches, and with ctx.Err()
// if the context is cancelled mid-search.
func SelectBestGuess(ctx context.Context, state State, guesses, answers []Word, params SearchParams) (*Result, error) {
	possible := FilterAnswers(state, answers)
	if len(possible) == 0 {
		return nil, ErrNoCandidates
	}
	res := &Result{Possible: possible}
	if len(possible) < shortcutBelow {
		res.Guess = possible[0]
		res.Shortcut = true
		return res, nil
	}
	if len(guesses) == 0 {
		// Nothing to score: fall back to a candidate.
		res.Guess = possible[0]
		return res, nil
	}

	if params.RecordScores {
		res.Scores = make([]GuessScore, 0, len(guesses))
	}
	remaining := make(map[State]int)
	n := float64(len(possible))

	for gi, g := range guesses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		total := 0
		for _, a := range possible {
			post := state.Derive(g, a)
			res.Derivations++
			left, ok := remaining[post]
			if ok {
				res.CacheHits++
			} else {
				left = CountMatches(post, possible)
				remaining[post] = left
			}
			total += left - 1
		}
		score := float64(total) / n

		if gi == 0 || score < res.Score {
			res.Guess, res.Score = g, score
		}
		if params.RecordScores {
			res.Scores = append(res.Scores, GuessScore{Guess: g, Score: score})
		}
		if params.Progress != nil {
			params.Progress(gi+1, len(guesses))
		}
	}
	return res, nil
}

// Top returns up to n recorded scores, best first. Equal scores keep guess
// order. It returns nil unless scores were recorded.
func (r *Result) Top(n int) []GuessScore {
	if len(r.Scores) == 0 || n <= 0 {
		return nil
	}
	sorted := slices.Clone(r.Scores)
	slices.SortStableFunc(sorted, func(a, b GuessScore) int { return cmp.Compare(a.Score, b.Score) })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
