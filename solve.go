// solve.go
//
// The solve command: load word lists, combine feedback from flags (or the
// FEEDBACK_* environment) with any rounds given via -played, and print the
// best next guess with the answers that remain.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/Markaronin/wordle-solver/internal/config"
	"github.com/Markaronin/wordle-solver/internal/feedback"
	"github.com/Markaronin/wordle-solver/internal/game"
	"github.com/Markaronin/wordle-solver/internal/solver"
	"github.com/Markaronin/wordle-solver/internal/words"
)

func runSolve(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("solve")
	greens := fs.String("greens", cfg.Feedback.Greens, "known letters per position, '.' for unknown (e.g. s...k)")
	yellows := fs.String("yellows", cfg.Feedback.Yellows, "five comma-separated groups of misplaced letters (e.g. ,,a,tn,t)")
	greys := fs.String("greys", cfg.Feedback.Greys, "letters known to be absent (e.g. roecli)")
	played := fs.String("played", "", "rounds as guess:marks, comma-separated (marks g/y/.; e.g. crane:..gy.)")
	answers := fs.String("answers", cfg.Words.Answers, "answer list file (default: embedded)")
	guesses := fs.String("guesses", cfg.Words.Guesses, "allowed guess list file (default: embedded)")
	scores := fs.Bool("scores", false, "print the score of every guess")
	top := fs.Int("top", 0, "print the n best guesses with their scores")
	progress := fs.Bool("progress", false, "show a progress bar while scoring")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lists, err := words.LoadLists(words.Sources{Answers: *answers, Guesses: *guesses})
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	a, g := lists.Stats()
	log.Debug().Int("answers", a).Int("guesses", g).Str("fingerprint", lists.Fingerprint()).Msg("word lists loaded")

	fb, err := feedback.Parse(feedback.Spec{Greens: *greens, Yellows: *yellows, Greys: *greys})
	if err != nil {
		return err
	}
	if fb, err = applyPlayed(fb, *played); err != nil {
		return err
	}

	params := solver.SearchParams{RecordScores: *scores || *top > 0}
	var bar *progressbar.ProgressBar
	if *progress {
		params.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("scoring guesses"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(done)
		}
	}

	state := solver.FromFeedback(fb)
	log.Debug().Str("state", state.String()).Msg("searching")
	res, err := solver.SelectBestGuess(ctx, state, lists.Guesses, lists.Answers, params)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}
	log.Debug().Int("derivations", res.Derivations).Int("cacheHits", res.CacheHits).Msg("search done")

	printResult(os.Stdout, res, *scores, *top)
	return nil
}

// applyPlayed folds "guess:marks,guess:marks" rounds into fb.
func applyPlayed(fb solver.Feedback, played string) (solver.Feedback, error) {
	if strings.TrimSpace(played) == "" {
		return fb, nil
	}
	for _, round := range strings.Split(played, ",") {
		word, pattern, ok := strings.Cut(strings.TrimSpace(round), ":")
		if !ok {
			return fb, fmt.Errorf("%w: round %q is not guess:marks", feedback.ErrInvalidFeedback, round)
		}
		guess, err := solver.ParseWord(strings.ToLower(word))
		if err != nil {
			return fb, err
		}
		marks, err := game.ParseMarks(pattern)
		if err != nil {
			return fb, fmt.Errorf("%w: %w", feedback.ErrInvalidFeedback, err)
		}
		if fb, err = feedback.Accumulate(fb, guess, marks); err != nil {
			return fb, err
		}
	}
	return fb, fb.Validate()
}

func printResult(w io.Writer, res *solver.Result, all bool, top int) {
	if all {
		for _, gs := range res.Scores {
			fmt.Fprintf(w, "%s %.4f\n", gs.Guess, gs.Score)
		}
	}
	if top > 0 {
		fmt.Fprintf(w, "top %d:\n", top)
		for i, gs := range res.Top(top) {
			fmt.Fprintf(w, "%3d. %s %.4f\n", i+1, gs.Guess, gs.Score)
		}
	}
	switch {
	case res.Shortcut:
		fmt.Fprintf(w, "best guess: %s (only %d possible)\n", res.Guess, len(res.Possible))
	default:
		fmt.Fprintf(w, "best guess: %s (score %.4f)\n", res.Guess, res.Score)
	}
	fmt.Fprintf(w, "%d possible answers: %s\n", len(res.Possible), strings.Join(solver.Strings(res.Possible), " "))
}
