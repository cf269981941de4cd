package metallum

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// searchKey is the exact artist and title pair used for a search.
type searchKey struct {
	artist string
	title  string
}

// SearchCache memoizes search hits by the exact artist and title they were searched
// with. It is safe for concurrent use.
//
// By default entries never expire and are never evicted. They live until Clear is
// called or the process stops. When constructed with a positive capacity the least
// recently used entries are evicted once the capacity is reached.
type SearchCache struct {
	mu      sync.RWMutex
	entries map[searchKey]SearchHit

	bounded *lru.Cache
}

// NewSearchCache returns an empty cache. A capacity of zero or less means the
// cache is unbounded.
func NewSearchCache(capacity int) *SearchCache {
	sc := &SearchCache{}
	if capacity > 0 {
		// lru.New fails only for non-positive sizes.
		sc.bounded, _ = lru.New(capacity)
		return sc
	}

	sc.entries = make(map[searchKey]SearchHit)
	return sc
}

// Get returns the cached hit for artist and title if there is one.
func (sc *SearchCache) Get(artist, title string) (SearchHit, bool) {
	key := searchKey{artist: artist, title: title}

	if sc.bounded != nil {
		val, ok := sc.bounded.Get(key)
		if !ok {
			return SearchHit{}, false
		}
		return val.(SearchHit), true
	}

	sc.mu.RLock()
	defer sc.mu.RUnlock()

	hit, ok := sc.entries[key]
	return hit, ok
}

// Put stores hit for artist and title, replacing any previous value.
func (sc *SearchCache) Put(artist, title string, hit SearchHit) {
	key := searchKey{artist: artist, title: title}

	if sc.bounded != nil {
		sc.bounded.Add(key, hit)
		return
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.entries[key] = hit
}

// Clear removes all entries.
func (sc *SearchCache) Clear() {
	if sc.bounded != nil {
		sc.bounded.Purge()
		return
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.entries = make(map[searchKey]SearchHit)
}

// Len returns the number of cached entries.
func (sc *SearchCache) Len() int {
	if sc.bounded != nil {
		return sc.bounded.Len()
	}

	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return len(sc.entries)
}
