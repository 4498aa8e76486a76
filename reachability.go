package statusmap

import (
	"container/list"
	"sync"

	"github.com/google/uuid"
)

// DefaultCacheCapacity is the reachability cache size used when no capacity
// is configured. Capacity is independent of graph size: entries are per
// (status, direction), one map rarely needs more than a few hundred.
const DefaultCacheCapacity = 512

// StatusSet is a set of statuses. Sets returned from reachability lookups are
// shared with the cache and must be treated as read-only.
type StatusSet map[Status]struct{}

// Contains reports whether the set includes the given status.
func (s StatusSet) Contains(status Status) bool {
	_, ok := s[status]
	return ok
}

type direction uint8

const (
	dirAncestors direction = iota
	dirDescendants
)

// reachKey identifies one cached reachability set. Map identity is part of
// the key so one cache can serve many maps without mixing results.
type reachKey struct {
	mapID  uuid.UUID
	status Status
	dir    direction
}

type reachEntry struct {
	key reachKey
	set StatusSet
}

// ReachabilityCache is a thread-safe bounded LRU cache of ancestor and
// descendant sets. Graphs are immutable, so entries never need invalidation;
// when the cache is full the least recently used entry is evicted.
type ReachabilityCache struct {
	capacity int
	items    map[reachKey]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewReachabilityCache creates a cache with the given capacity.
// The capacity must be positive, otherwise it panics.
func NewReachabilityCache(capacity int) *ReachabilityCache {
	if capacity <= 0 {
		panic("reachability cache capacity must be positive")
	}
	return &ReachabilityCache{
		capacity: capacity,
		items:    make(map[reachKey]*list.Element),
		eviction: list.New(),
	}
}

// Len returns the number of cached reachability sets.
func (c *ReachabilityCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// getOrCompute returns the cached set for the key, computing and storing it
// on a miss. The computation runs outside the lock: concurrent first lookups
// of the same key may compute redundantly, but the graph is immutable so
// every computation yields an identical set and any of them may win.
func (c *ReachabilityCache) getOrCompute(key reachKey, compute func() StatusSet) StatusSet {
	if set, ok := c.get(key); ok {
		return set
	}

	set := compute()
	c.put(key, set)
	return set
}

// get retrieves a set and marks it as recently used.
func (c *ReachabilityCache) get(key reachKey) (StatusSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*reachEntry).set, true
	}
	return nil, false
}

// put stores a set, evicting the least recently used entry at capacity.
func (c *ReachabilityCache) put(key reachKey, set StatusSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		// A concurrent computation got here first; keep its entry.
		c.eviction.MoveToFront(elem)
		return
	}

	elem := c.eviction.PushFront(&reachEntry{key: key, set: set})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		if oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*reachEntry).key)
		}
	}
}
