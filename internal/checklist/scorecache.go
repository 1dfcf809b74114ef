package checklist

import (
	"sync"

	"chaincheck/internal/threat"
)

// scoreCache memoizes computed percentages per threat level. It is purely
// derived data: safe to discard wholesale at any time. Reads and writes
// are explicit so getters stay getters; the service decides when to
// compute and when to invalidate.
//
// Fills are generation-checked: a writer observes Generation before
// computing and the fill is dropped if an invalidation landed in between.
// Without that, a compute racing a mutation could install a pre-mutation
// score after the invalidation and serve it until the next mutation.
type scoreCache struct {
	mu      sync.Mutex
	gen     uint64
	entries map[threat.Level]*scoreEntry
}

type scoreEntry struct {
	overall    int
	overallSet bool
	categories map[string]int
}

func newScoreCache() *scoreCache {
	return &scoreCache{entries: make(map[threat.Level]*scoreEntry)}
}

func (c *scoreCache) Category(level threat.Level, categoryID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entries[level]
	if e == nil {
		return 0, false
	}
	score, ok := e.categories[categoryID]
	return score, ok
}

// Generation returns the current invalidation generation. Callers snapshot
// it before computing a score and pass it back to the Set methods.
func (c *scoreCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *scoreCache) SetCategory(level threat.Level, categoryID string, score int, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.entry(level).categories[categoryID] = score
}

func (c *scoreCache) Overall(level threat.Level) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entries[level]
	if e == nil || !e.overallSet {
		return 0, false
	}
	return e.overall, true
}

func (c *scoreCache) SetOverall(level threat.Level, score int, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	e := c.entry(level)
	e.overall = score
	e.overallSet = true
}

// Invalidate clears every level's entry. Used after any completion-state
// change, since one item can affect every profile's score.
func (c *scoreCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.entries = make(map[threat.Level]*scoreEntry)
}

// InvalidateLevel clears a single level's entry. Used when switching away
// from a threat level; the new level's entry, if warm, stays valid.
func (c *scoreCache) InvalidateLevel(level threat.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	delete(c.entries, level)
}

func (c *scoreCache) entry(level threat.Level) *scoreEntry {
	e := c.entries[level]
	if e == nil {
		e = &scoreEntry{categories: make(map[string]int)}
		c.entries[level] = e
	}
	return e
}
