// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON, CORS, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /solve: best next guess for a feedback value, served from the
//     result store when the same feedback was solved before.
//   - GET /history (require auth): recently stored results.
//
// Notes:
//   - The handler timeout doubles as the search deadline: the search watches
//     the request context and the timeout middleware answers 504.
//   - Error bodies are always {"error": code} with an optional "detail".

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Markaronin/wordle-solver/internal/feedback"
	"github.com/Markaronin/wordle-solver/internal/solver"
	"github.com/Markaronin/wordle-solver/internal/store"
	"github.com/Markaronin/wordle-solver/internal/words"
)

// Options configures a Server. Zero fields take the defaults below.
type Options struct {
	JWTSecret    string
	ClientOrigin string        // default http://localhost:5173
	SolveTimeout time.Duration // default 10s
}

// Server bundles router, word lists and result store.
type Server struct {
	r           *chi.Mux
	lists       *words.Lists
	fingerprint string
	store       store.Store
	opts        Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, st store.Store, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.SolveTimeout <= 0 {
		opts.SolveTimeout = 10 * time.Second
	}
	s := &Server{
		r:           chi.NewRouter(),
		lists:       lists,
		fingerprint: lists.Fingerprint(),
		store:       st,
		opts:        opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                  // add X-Request-ID
	s.r.Use(chimw.RealIP)                     // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                        // one zerolog line per request
	s.r.Use(chimw.Recoverer)                  // recover from panics
	s.r.Use(chimw.Timeout(opts.SolveTimeout)) // bound handler time
	s.r.Use(jsonContentType)                  // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))          // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/debug/words","POST /solve","GET /history"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]any{"answers": a, "guesses": g, "fingerprint": s.fingerprint})
	})

	s.r.Post("/solve", s.handleSolve)
	s.r.With(s.requireAuth()).Get("/history", s.handleHistory)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request with status and latency.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}

// ------------------------------ SOLVE --------------------------------------

// solveReq is the POST /solve body; the feedback fields follow feedback.Spec.
type solveReq struct {
	feedback.Spec
	Scores bool `json:"scores"` // include every guess's score (bypasses the store)
}

type scoreRow struct {
	Guess string  `json:"guess"`
	Score float64 `json:"score"`
}

type solveRes struct {
	Guess     string     `json:"guess"`
	Score     float64    `json:"score"`
	Shortcut  bool       `json:"shortcut"`
	Remaining []string   `json:"remaining"`
	Scores    []scoreRow `json:"scores,omitempty"`
	Cached    bool       `json:"cached"`
}

// handleSolve validates feedback, consults the store, and otherwise runs
// the search and stores its result.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	fb, err := feedback.Parse(req.Spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_feedback", err.Error())
		return
	}
	spec := feedback.Format(fb)
	key := store.Key(s.fingerprint, spec)

	if !req.Scores {
		rec, err := s.store.Get(r.Context(), key)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, solveRes{
				Guess:     rec.Guess,
				Score:     rec.Score,
				Shortcut:  rec.Shortcut,
				Remaining: rec.Remaining,
				Cached:    true,
			})
			return
		case !errors.Is(err, store.ErrNotFound):
			log.Warn().Err(err).Str("key", key).Msg("store lookup")
		}
	}

	res, err := solver.SelectBestGuess(r.Context(), solver.FromFeedback(fb), s.lists.Guesses, s.lists.Answers,
		solver.SearchParams{RecordScores: req.Scores})
	switch {
	case errors.Is(err, solver.ErrNoCandidates):
		writeError(w, http.StatusUnprocessableEntity, "no_candidates", spec.String())
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		// The timeout middleware answers 504; a gone client needs no answer.
		log.Warn().Err(err).Str("feedback", spec.String()).Msg("solve aborted")
		return
	case err != nil:
		log.Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed", "")
		return
	}

	out := solveRes{
		Guess:     res.Guess.String(),
		Score:     res.Score,
		Shortcut:  res.Shortcut,
		Remaining: solver.Strings(res.Possible),
	}
	for _, gs := range res.Scores {
		out.Scores = append(out.Scores, scoreRow{Guess: gs.Guess.String(), Score: gs.Score})
	}

	rec := &store.Record{
		Key:         key,
		Fingerprint: s.fingerprint,
		Feedback:    spec,
		Guess:       out.Guess,
		Score:       out.Score,
		Shortcut:    out.Shortcut,
		Remaining:   out.Remaining,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("save solve")
	}
	log.Info().
		Str("feedback", spec.String()).
		Str("guess", out.Guess).
		Float64("score", out.Score).
		Int("remaining", len(out.Remaining)).
		Int("derivations", res.Derivations).
		Int("cacheHits", res.CacheHits).
		Msg("solved")

	writeJSON(w, http.StatusOK, out)
}

// ----------------------------- HISTORY -------------------------------------

// handleHistory lists recent records, newest first (?limit=n, default 20).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			writeError(w, http.StatusBadRequest, "bad_limit", v)
			return
		}
		limit = n
	}
	recs, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent solves")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code, "detail": detail}; detail is omitted when empty.
func writeError(w http.ResponseWriter, status int, code, detail string) {
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}
