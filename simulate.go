// simulate.go
//
// The simulate command: the solver plays one game against a chosen answer
// (-answer, or the answer of the day with -daily) and prints each row.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Markaronin/wordle-solver/internal/autoplay"
	"github.com/Markaronin/wordle-solver/internal/config"
	"github.com/Markaronin/wordle-solver/internal/daily"
	"github.com/Markaronin/wordle-solver/internal/game"
	"github.com/Markaronin/wordle-solver/internal/solver"
	"github.com/Markaronin/wordle-solver/internal/words"
)

func runSimulate(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("simulate")
	answerFlag := fs.String("answer", "", "answer to play against")
	useDaily := fs.Bool("daily", false, "play the answer of the day (DAILY_SALT)")
	date := fs.String("date", "", "date for -daily as YYYY-MM-DD (default: today, UTC)")
	answers := fs.String("answers", cfg.Words.Answers, "answer list file (default: embedded)")
	guesses := fs.String("guesses", cfg.Words.Guesses, "allowed guess list file (default: embedded)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lists, err := words.LoadLists(words.Sources{Answers: *answers, Guesses: *guesses})
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	var answer solver.Word
	switch {
	case *answerFlag != "" && *useDaily:
		return errors.New("-answer and -daily are mutually exclusive")
	case *answerFlag != "":
		if answer, err = solver.ParseWord(strings.ToLower(*answerFlag)); err != nil {
			return err
		}
	case *useDaily:
		day := time.Now()
		if *date != "" {
			if day, err = time.Parse("2006-01-02", *date); err != nil {
				return fmt.Errorf("-date: %w", err)
			}
		}
		if answer, err = daily.NewPicker(cfg.DailySalt, lists.Answers).Answer(day); err != nil {
			return err
		}
		log.Info().Str("date", daily.DateKey(day)).Msg("playing answer of the day")
	default:
		return errors.New("need -answer or -daily")
	}

	start := time.Now()
	tr, err := autoplay.Play(ctx, answer, lists, solver.SearchParams{})
	if err != nil {
		return err
	}
	log.Debug().Str("game", tr.GameID).Dur("took", time.Since(start)).Msg("simulation finished")

	printTranscript(os.Stdout, tr)
	return nil
}

func printTranscript(w io.Writer, tr *autoplay.Transcript) {
	for i, t := range tr.Turns {
		score := fmt.Sprintf("%.4f", t.Score)
		if t.Shortcut {
			score = "-"
		}
		fmt.Fprintf(w, "%d. %s %s  possible=%d score=%s\n", i+1, t.Guess, game.FormatMarks(t.Marks), t.Remaining, score)
	}
	if tr.Won {
		fmt.Fprintf(w, "solved %s in %d\n", tr.Answer, tr.Rounds())
	} else {
		fmt.Fprintf(w, "failed to find %s\n", tr.Answer)
	}
}
