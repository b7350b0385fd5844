package suggest

import (
	"math/rand"
	"sync"
	"time"

	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/textutil"
)

const (
	// HistoryLimit caps how many persisted records feed the recent set.
	HistoryLimit = 40
	// recentCacheSize bounds the in-process per-field fast-path cache.
	recentCacheSize = 30
)

// Record is one accepted suggestion, append-only.
type Record struct {
	Field     Field
	ScopeKey  string
	Text      string
	UserID    string
	CreatedAt time.Time
}

// Store is the persistence contract the tracker needs. Failures from any
// method must never fail a suggestion request; the tracker absorbs them.
type Store interface {
	// FindRecent returns up to limit accepted suggestions for the scope,
	// most recent first.
	FindRecent(field Field, scopeKey string, limit int) ([]Record, error)
	// Insert appends an accepted suggestion.
	Insert(rec Record) error
	// IncrementTurn atomically bumps and returns the scope's turn counter.
	IncrementTurn(field Field, scopeKey string) (int, error)
}

// recentCache is a bounded per-field ring of recently accepted suggestions,
// shared across scopes. It is a latency optimization only; cross-process
// uniqueness comes from the store.
type recentCache struct {
	mu      sync.Mutex
	entries map[Field][]string
}

func newRecentCache() *recentCache {
	return &recentCache{entries: make(map[Field][]string)}
}

func (c *recentCache) add(field Field, normalized string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ring := c.entries[field]
	for _, e := range ring {
		if e == normalized {
			return
		}
	}
	ring = append(ring, normalized)
	if len(ring) > recentCacheSize {
		ring = ring[len(ring)-recentCacheSize:]
	}
	c.entries[field] = ring
}

func (c *recentCache) snapshot(field Field) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.entries[field]...)
}

// Tracker owns the scope-keyed suggestion history: recent-set loads, accepted
// suggestion persistence, and the per-scope turn counter.
type Tracker struct {
	store Store
	cache *recentCache
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewTracker builds a tracker over the given store. store may be nil, in
// which case uniqueness degrades to the in-process cache.
func NewTracker(store Store) *Tracker {
	return &Tracker{
		store: store,
		cache: newRecentCache(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadRecent returns the set of normalized suggestions recently accepted for
// the scope, merging the in-process cache with the persistent store. Store
// errors degrade to the cache-only view.
func (t *Tracker) LoadRecent(field Field, scopeKey string) map[string]bool {
	recent := make(map[string]bool)
	for _, e := range t.cache.snapshot(field) {
		recent[e] = true
	}
	if t.store == nil {
		return recent
	}
	records, err := t.store.FindRecent(field, scopeKey, HistoryLimit)
	if err != nil {
		logger.Warn("⚠️ Suggestion history unavailable, using in-process cache only", logger.Fields{
			"field":     string(field),
			"scope_key": scopeKey,
			"error":     err.Error(),
		})
		return recent
	}
	for _, rec := range records {
		recent[textutil.Normalize(rec.Text)] = true
	}
	return recent
}

// Persist appends an accepted suggestion and feeds the fast-path cache.
// Store write failures are logged, never raised.
func (t *Tracker) Persist(field Field, scopeKey, text, userID string) {
	t.cache.add(field, textutil.Normalize(text))
	if t.store == nil {
		return
	}
	err := t.store.Insert(Record{
		Field:     field,
		ScopeKey:  scopeKey,
		Text:      text,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("⚠️ Failed to persist suggestion record", logger.Fields{
			"field":     string(field),
			"scope_key": scopeKey,
			"error":     err.Error(),
		})
	}
}

// NextTurn bumps the scope's turn counter. On store failure it returns a
// random value so downstream entropy still varies.
func (t *Tracker) NextTurn(field Field, scopeKey string) int {
	if t.store != nil {
		turn, err := t.store.IncrementTurn(field, scopeKey)
		if err == nil {
			return turn
		}
		logger.Warn("⚠️ Turn counter unavailable, falling back to random turn", logger.Fields{
			"field":     string(field),
			"scope_key": scopeKey,
			"error":     err.Error(),
		})
	}
	t.rngMu.Lock()
	defer t.rngMu.Unlock()
	return t.rng.Intn(1_000_000)
}
