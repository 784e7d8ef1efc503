// Package bestscore keeps the best score in a key-value store.
// It reads the stored value once and writes through whenever a higher
// score is observed.
package bestscore

import (
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// Key is the store key holding the best score.
const Key = "bestScore"

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
}

// Tracker caches the best score and writes new records to a Store.
// It is safe for concurrent use, so SSH sessions can share one.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	logger *log.Logger
	best   int
	loaded bool
}

// New creates a tracker. A nil logger discards output.
func New(store Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{store: store, logger: logger}
}

// Load reads the stored best score. A missing, unreadable or malformed value
// counts as 0.
func (t *Tracker) Load() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.load()
}

func (t *Tracker) load() int {
	t.loaded = true
	t.best = 0

	raw, ok, err := t.store.Get(Key)
	if err != nil {
		t.logger.Warn("could not read best score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		t.logger.Warn("ignoring malformed best score", "value", raw)
		return 0
	}

	t.best = n
	return n
}

// Best returns the cached best score, loading it on first use.
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return t.load()
	}
	return t.best
}

// Observe records score. If it beats the best score the new value is written
// to the store and returned with raised set. A failed write is logged; the
// cached best still advances.
func (t *Tracker) Observe(score int) (best int, raised bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		t.load()
	}
	if score <= t.best {
		return t.best, false
	}

	t.best = score
	if err := t.store.Set(Key, strconv.Itoa(score)); err != nil {
		t.logger.Warn("could not save best score", "score", score, "error", err)
	}
	return t.best, true
}

// Reset sets the stored best score back to 0.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.best = 0
	t.loaded = true
	return t.store.Set(Key, "0")
}
