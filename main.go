// main.go
//
// Command wordle-solver.
//
// Usage:
//
//	wordle-solver [solve] [flags]   best next guess for some feedback (default)
//	wordle-solver simulate [flags]  let the solver play a game against an answer
//	wordle-solver serve             HTTP API (see internal/httpserver)
//	wordle-solver token [flags]     mint a bearer token for GET /history
//
// Settings come from the environment (and .env), see internal/config; flags
// override them per run.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Markaronin/wordle-solver/internal/config"
)

// command is one subcommand; args excludes the command name.
type command func(ctx context.Context, cfg *config.Config, args []string) error

var commands = map[string]command{
	"solve":    runSolve,
	"simulate": runSimulate,
	"serve":    runServe,
	"token":    runToken,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	name, args := "solve", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q (want solve, simulate, serve or token)\n", name)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cmd(ctx, cfg, args)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Error().Err(err).Str("command", name).Msg("failed")
		os.Exit(1)
	}
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}
