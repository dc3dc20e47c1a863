// cache.go -- memoized lookup results across repeated searches for
// the same target digest
//
// The teacher's DBReader keeps an ARC cache of raw records read off
// disk (dbreader.go). Here there's no "record" to cache -- there's a
// recovered seed -- so the same cache is repurposed to memoize
// (hashName, digest) -> Result across the lookups one Session makes
// for a target (SearchFile over several table files, or Crack).
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	lru "github.com/opencoff/golang-lru"
)

// defaultCacheSize matches the teacher's own NewDBReader default.
const defaultCacheSize = 128

// ResultCache memoizes Search/Crack outcomes.
type ResultCache struct {
	arc *lru.ARCCache
}

type cacheKey struct {
	hashName string
	digest   string
}

// NewResultCache creates a cache holding up to size recent results;
// size <= 0 falls back to defaultCacheSize.
func NewResultCache(size int) (*ResultCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &ResultCache{arc: arc}, nil
}

// Get returns a previously cached result for (hashName, digest), if
// any.
func (c *ResultCache) Get(hashName string, digest []byte) (Result, bool) {
	v, ok := c.arc.Get(cacheKey{hashName, string(digest)})
	if !ok {
		return Result{}, false
	}
	return v.(Result), true
}

// Add records a result for (hashName, digest).
func (c *ResultCache) Add(hashName string, digest []byte, r Result) {
	c.arc.Add(cacheKey{hashName, string(digest)}, r)
}

// Purge empties the cache.
func (c *ResultCache) Purge() {
	c.arc.Purge()
}
