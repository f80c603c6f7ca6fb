// Package search governs when the expensive external file search runs:
// keystrokes are debounced, and a query that merely extends the previous
// one narrows the cached result set instead of rescanning.
package search

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"flingr/internal/logger"
)

// Searcher is the external file-search collaborator. It must apply the
// result cap itself.
type Searcher interface {
	Search(query string, limit int) ([]string, error)
}

// Result is the outcome of one controller step. Pending means the
// debounce window is still open (or the query is too short) and the
// caller should show a placeholder instead of results.
type Result struct {
	Pending bool
	Paths   []string
}

// cacheEntry remembers the last issued query and its raw result set.
type cacheEntry struct {
	query string
	paths []string
}

// Controller decides per keystroke between placeholder, cache
// narrowing, and a fresh external scan.
type Controller struct {
	searcher Searcher
	debounce time.Duration
	minLen   int
	limit    int
	cache    cacheEntry
	log      *log.Logger
}

// NewController wires a controller around an external searcher.
func NewController(searcher Searcher, debounce time.Duration, minLen, limit int) *Controller {
	return &Controller{
		searcher: searcher,
		debounce: debounce,
		minLen:   minLen,
		limit:    limit,
		log:      logger.New("search"),
	}
}

// Step is called once per rebuild with the current clock and the time
// of the last keystroke. It performs no expensive work while input is
// still settling.
func (c *Controller) Step(now, lastEdit time.Time, query string) Result {
	if len(query) < c.minLen || now.Sub(lastEdit) < c.debounce {
		return Result{Pending: true}
	}

	if paths, ok := c.narrow(query); ok {
		return Result{Paths: paths}
	}

	paths, err := c.searcher.Search(query, c.limit)
	if err != nil {
		c.log.Warn("external search failed", "query", query, "err", err)
		paths = nil
	}
	c.cache = cacheEntry{query: query, paths: paths}
	return Result{Paths: paths}
}

// Due reports whether a debounced rebuild is now worth issuing; the
// idle loop polls this so a paused search never sits on a stale
// placeholder.
func (c *Controller) Due(now, lastEdit time.Time, query string) bool {
	return len(query) >= c.minLen && now.Sub(lastEdit) >= c.debounce
}

// Invalidate drops the cache, forcing the next step to rescan.
func (c *Controller) Invalidate() {
	c.cache = cacheEntry{}
}

// narrow filters the cached result set when the new query extends the
// cached one as a prefix. An optimization only: any miss falls back to
// a fresh scan. A narrowing that yields zero paths is still a valid
// result, not a miss.
func (c *Controller) narrow(query string) ([]string, bool) {
	if c.cache.query == "" || len(c.cache.paths) == 0 {
		return nil, false
	}
	if !strings.HasPrefix(query, c.cache.query) {
		return nil, false
	}
	if query == c.cache.query {
		return c.cache.paths, true
	}

	q := strings.ToLower(query)
	narrowed := make([]string, 0, len(c.cache.paths))
	for _, p := range c.cache.paths {
		if strings.Contains(strings.ToLower(p), q) {
			narrowed = append(narrowed, p)
		}
	}
	c.cache = cacheEntry{query: query, paths: narrowed}
	return narrowed, true
}
