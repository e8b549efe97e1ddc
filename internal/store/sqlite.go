// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded migrations/*.sql in lexical order, each once,
//     recorded in the _migrations table.
//   - Reading and writing solve records.
//
// Remaining answers are stored as one space-separated column; words never
// contain spaces.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// OpenSQLite opens (and creates if missing) a SQLite database file and
// brings its schema up to date.
func OpenSQLite(path string) (*sql.DB, error) {
	// Ensure directory exists for ./data/solver.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies embedded migrations that are not yet recorded. Each file
// runs in its own transaction together with its _migrations row.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		name := filepath.Base(f)

		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

// sqlStore implements Store on a migrated *sql.DB.
type sqlStore struct {
	db *sql.DB
}

// NewSQLStore wraps db, which must already be migrated (see OpenSQLite).
func NewSQLStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

const recordColumns = `key, fingerprint, greens, yellows, greys, guess, score, shortcut, remaining, created_at`

// Save upserts by key. REPLACE assigns a fresh rowid, so a re-saved record
// counts as the newest.
func (s *sqlStore) Save(ctx context.Context, r *Record) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO solves (`+recordColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Key, r.Fingerprint, r.Feedback.Greens, r.Feedback.Yellows, r.Feedback.Greys,
		r.Guess, r.Score, r.Shortcut, strings.Join(r.Remaining, " "),
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save solve %s: %w", r.Key, err)
	}
	return nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM solves WHERE key=?`, key)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *sqlStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+recordColumns+`
        FROM solves
        ORDER BY rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Record, 0, limit)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var r Record
	var remaining, created string
	if err := sc.Scan(&r.Key, &r.Fingerprint, &r.Feedback.Greens, &r.Feedback.Yellows, &r.Feedback.Greys,
		&r.Guess, &r.Score, &r.Shortcut, &remaining, &created); err != nil {
		return nil, err
	}
	r.Remaining = strings.Fields(remaining)
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("solve %s: created_at: %w", r.Key, err)
	}
	r.CreatedAt = t
	return &r, nil
}
