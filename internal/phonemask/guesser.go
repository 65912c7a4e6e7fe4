package phonemask

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
)

const (
	// maxGuessDigits bounds the prefix used for inference.
	maxGuessDigits = 6

	// seedPriority is worse than any valid table priority so the first real
	// match always replaces the seed.
	seedPriority = 10001

	DefaultGuessCacheSize = 4096
)

// GuessCountry picks the record whose dial code is the longest prefix of
// prefix, breaking length ties by lower Priority. When nothing matches, or
// prefix is blank, the record for defaultISO2 is returned, or the zero
// Country if there is none.
func GuessCountry(prefix string, table *country.Table, defaultISO2 string) country.Country {
	fallback, _ := table.Lookup(defaultISO2)
	if strings.TrimSpace(prefix) == "" {
		return fallback
	}

	best := country.Country{Priority: seedPriority}
	for c := range table.All() {
		if !strings.HasPrefix(prefix, c.DialCode) {
			continue
		}
		switch {
		case len(c.DialCode) > len(best.DialCode):
			best = c
		case len(c.DialCode) == len(best.DialCode) && c.Priority < best.Priority:
			best = c
		}
	}

	if best.IsZero() {
		return fallback
	}
	return best
}

type guessKey struct {
	prefix      string
	table       uint64
	defaultISO2 string
}

// Guesser memoizes GuessCountry. It is safe for concurrent use and may be
// shared between tables; entries are keyed by table fingerprint.
//
// The memo holds at most capacity entries. Once full it is cleared and starts
// over, which keeps memory bounded without per-entry bookkeeping. A capacity
// of zero or less disables memoization.
type Guesser struct {
	mu       sync.Mutex
	entries  map[guessKey]country.Country
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func NewGuesser(capacity int) *Guesser {
	g := &Guesser{capacity: capacity}
	if capacity > 0 {
		g.entries = make(map[guessKey]country.Country, min(capacity, 256))
	}
	return g
}

func (g *Guesser) Guess(prefix string, table *country.Table, defaultISO2 string) country.Country {
	if g == nil || g.capacity <= 0 {
		return GuessCountry(prefix, table, defaultISO2)
	}

	key := guessKey{prefix: prefix, table: table.Fingerprint(), defaultISO2: defaultISO2}

	g.mu.Lock()
	c, ok := g.entries[key]
	g.mu.Unlock()
	if ok {
		g.hits.Add(1)
		return c
	}

	g.misses.Add(1)
	c = GuessCountry(prefix, table, defaultISO2)

	g.mu.Lock()
	if len(g.entries) >= g.capacity {
		clear(g.entries)
		g.evictions.Add(1)
	}
	g.entries[key] = c
	g.mu.Unlock()
	return c
}

// Reset drops every memoized entry.
func (g *Guesser) Reset() {
	if g == nil || g.entries == nil {
		return
	}
	g.mu.Lock()
	clear(g.entries)
	g.mu.Unlock()
}

func (g *Guesser) Len() int {
	if g == nil || g.entries == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

type GuesserStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (g *Guesser) Stats() GuesserStats {
	if g == nil {
		return GuesserStats{}
	}
	return GuesserStats{
		Hits:      g.hits.Load(),
		Misses:    g.misses.Load(),
		Evictions: g.evictions.Load(),
	}
}
