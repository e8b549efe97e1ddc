// serve.go
//
// The serve and token commands.
//   - serve: HTTP API on PORT; results persist to SQLite at DB_PATH, or to
//     memory when DB_PATH is empty.
//   - token: print a bearer token for GET /history.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Markaronin/wordle-solver/internal/config"
	"github.com/Markaronin/wordle-solver/internal/httpserver"
	"github.com/Markaronin/wordle-solver/internal/store"
	"github.com/Markaronin/wordle-solver/internal/words"
)

func runServe(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("serve")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lists, err := words.LoadLists(cfg.Words)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("guesses", g).Msg("word lists loaded")

	st := store.NewMemoryStore()
	if cfg.DBPath != "" {
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		st = store.NewSQLStore(db)
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
	}

	srv := httpserver.New(lists, st, httpserver.Options{
		JWTSecret:    cfg.JWTSecret,
		ClientOrigin: cfg.ClientOrigin,
		SolveTimeout: cfg.SolveTimeout,
	})
	log.Info().Str("port", cfg.Port).Msg("starting wordle-solver")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runToken(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("token")
	sub := fs.String("sub", "operator", "token subject")
	ttl := fs.Duration("ttl", cfg.JWTExpiry, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tok, exp, err := httpserver.IssueToken(cfg.JWTSecret, *sub, *ttl)
	if err != nil {
		return err
	}
	log.Info().Str("sub", *sub).Time("expires", exp).Msg("token issued")
	fmt.Println(tok)
	return nil
}
