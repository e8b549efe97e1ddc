// internal/store/store.go
//
// Persistence for solve results.
//
// A Record captures one completed search: the feedback it ran on, the word
// lists (by fingerprint) and what the search decided. The search is
// deterministic, so a Record found under the same Key is a valid answer for a
// repeated request.
//
// Implementations:
//   - memory.go: RWMutex-guarded map, lost on restart.
//   - sqlite.go: database/sql over github.com/mattn/go-sqlite3.

package store

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/Markaronin/wordle-solver/internal/feedback"
)

// ErrNotFound is returned by Get when no record has the key.
var ErrNotFound = errors.New("record not found")

// DefaultRecentLimit applies when Recent is called with limit <= 0.
const DefaultRecentLimit = 20

// Record is one stored solve result.
type Record struct {
	Key         string        `json:"key"`
	Fingerprint string        `json:"fingerprint"`
	Feedback    feedback.Spec `json:"feedback"`
	Guess       string        `json:"guess"`
	Score       float64       `json:"score"`
	Shortcut    bool          `json:"shortcut"`
	Remaining   []string      `json:"remaining"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Store defines the persistence interface for solve records.
type Store interface {
	// Save inserts or replaces the record with r.Key.
	Save(ctx context.Context, r *Record) error

	// Get retrieves a record by key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Record, error)

	// Recent returns up to limit records, newest first.
	// A limit <= 0 means DefaultRecentLimit.
	Recent(ctx context.Context, limit int) ([]*Record, error)
}

// Key derives the cache key for a search over the lists identified by
// fingerprint, starting from the canonical feedback spec.
func Key(fingerprint string, spec feedback.Spec) string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{fingerprint, spec.Greens, spec.Yellows, spec.Greys} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
