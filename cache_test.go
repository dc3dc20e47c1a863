// cache_test.go -- test suite for ResultCache
//
// (c) 2024 opencoff contributors

package rtcrack

import "testing"

func TestNewResultCacheDefaultsSizeWhenNonPositive(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(0)
	assert(err == nil, "NewResultCache(0): %s", err)
	assert(c != nil, "expected a non-nil cache")

	c, err = NewResultCache(-5)
	assert(err == nil, "NewResultCache(-5): %s", err)
	assert(c != nil, "expected a non-nil cache")
}

func TestResultCacheGetMissOnEmptyCache(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(8)
	assert(err == nil, "NewResultCache: %s", err)

	_, ok := c.Get("md5", []byte{1, 2, 3})
	assert(!ok, "expected a miss on an empty cache")
}

func TestResultCacheAddThenGetHits(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(8)
	assert(err == nil, "NewResultCache: %s", err)

	digest := []byte{0xde, 0xad, 0xbe, 0xef}
	want := Result{Seed: 12345, Found: true}
	c.Add("md5", digest, want)

	got, ok := c.Get("md5", digest)
	assert(ok, "expected a hit after Add")
	assert(got == want, "got %+v, want %+v", got, want)
}

func TestResultCacheKeyIncludesHashName(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(8)
	assert(err == nil, "NewResultCache: %s", err)

	digest := []byte{1, 2, 3, 4}
	c.Add("md5", digest, Result{Seed: 1, Found: true})

	_, ok := c.Get("wikihash", digest)
	assert(!ok, "same digest under a different hash name must not collide")
}

func TestResultCacheKeyIsByValueNotByBackingArray(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(8)
	assert(err == nil, "NewResultCache: %s", err)

	digest := []byte{9, 9, 9, 9}
	want := Result{Seed: 77, Found: true}
	c.Add("md5", digest, want)

	// mutate the caller's slice after Add; the cached entry must be
	// keyed on the bytes as they were at Add time, not aliased to this
	// backing array.
	digest[0] = 0

	got, ok := c.Get("md5", []byte{9, 9, 9, 9})
	assert(ok, "expected a hit on the original digest value")
	assert(got == want, "got %+v, want %+v", got, want)
}

func TestResultCachePurgeClearsEntries(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewResultCache(8)
	assert(err == nil, "NewResultCache: %s", err)

	digest := []byte{1, 1, 1, 1}
	c.Add("md5", digest, Result{Seed: 1, Found: true})

	c.Purge()

	_, ok := c.Get("md5", digest)
	assert(!ok, "expected Purge to empty the cache")
}
