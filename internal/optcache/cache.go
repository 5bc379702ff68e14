// Package optcache memoises the option grids of time pickers. Rendering a
// picker regenerates its options on every frame, and a document usually
// repeats a handful of configurations.
package optcache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/alexisbeaulieu97/toolkit/internal/logger"
	"github.com/alexisbeaulieu97/toolkit/pkg/locale"
	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

// DefaultSize is the number of grids kept when New is given a size below 1.
const DefaultSize = 64

// Key identifies one option grid.
type Key struct {
	Format string
	Min    int
	Max    int
	Step   int
	Locale string
}

// Entry is a cached grid with its step table. Callers must not modify the
// slices.
type Entry struct {
	Options []timeutil.Option
	Steps   timeutil.StepTable
}

// Stats counts lookups.
type Stats struct {
	Hits   int
	Misses int
	Len    int
}

// Cache is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   int
	misses int
	log    *logger.Logger
}

// New creates a cache holding at most size grids.
func New(size int, log *logger.Logger) *Cache {
	if size < 1 {
		size = DefaultSize
	}
	return &Cache{lru: lru.New(size), log: log}
}

// Get returns the grid for k, building it on a miss.
func (c *Cache) Get(k Key) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lru.Get(k); ok {
		c.hits++
		return v.(Entry)
	}

	c.misses++
	options := timeutil.OptionsIn(k.Format, k.Min, k.Max, k.Step, locale.Resolve(k.Locale))
	e := Entry{Options: options, Steps: timeutil.Steps(options)}
	c.lru.Add(k, e)

	c.log.WithFields(map[string]any{
		"format":  k.Format,
		"step":    k.Step,
		"options": len(options),
	}).Debug("option grid built")

	return e
}

// Stats returns the lookup counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Len: c.lru.Len()}
}

// Clear drops every grid and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
	c.hits, c.misses = 0, 0
}
