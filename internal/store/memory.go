// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database path is configured, and in tests.
//
// Characteristics:
//   - Records keyed by Record.Key in a map; insertion order kept for Recent.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Records are copied on the way in and out, so callers cannot mutate
//     stored state.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"slices"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex       // guards records and order
	records map[string]*Record // keyed by Record.Key
	order   []string           // keys, oldest first
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]*Record)}
}

// Save adds or replaces the record. A replaced record moves to the newest slot.
func (m *memory) Save(ctx context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.Key]; ok {
		m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == r.Key })
	}
	m.records[r.Key] = clone(r)
	m.order = append(m.order, r.Key)
	return nil
}

// Get looks up a record by key.
func (m *memory) Get(ctx context.Context, key string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[key]; ok {
		return clone(r), nil
	}
	return nil, ErrNotFound
}

// Recent walks the insertion order backwards.
func (m *memory) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Record, 0, min(limit, len(m.order)))
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, clone(m.records[m.order[i]]))
	}
	return out, nil
}

func clone(r *Record) *Record {
	c := *r
	c.Remaining = slices.Clone(r.Remaining)
	return &c
}
