package sentiment

import (
	"sync"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

// lruEntry is a node in the cache's doubly-linked list.
type lruEntry struct {
	key   string
	value types.Sentiment
	prev  *lruEntry
	next  *lruEntry
}

// lruCache is a thread-safe bounded LRU cache for classifier results.
// It uses a doubly-linked list for ordering and a map for O(1) lookups;
// the least recently used entry is evicted once capacity is reached.
// Classification is deterministic, so entries never need invalidation.
type lruCache struct {
	mu sync.Mutex

	capacity int
	items    map[string]*lruEntry

	// head.next is the most recently used, tail.prev the least recently used
	head *lruEntry
	tail *lruEntry
}

func newLRUCache(capacity int) *lruCache {
	c := &lruCache{
		capacity: capacity,
		items:    make(map[string]*lruEntry, capacity),
		head:     &lruEntry{},
		tail:     &lruEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// get retrieves an entry and marks it as most recently used.
func (c *lruCache) get(key string) (types.Sentiment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.moveToFront(entry)
	return entry.value, true
}

// add inserts or refreshes an entry, evicting the LRU entry at capacity.
func (c *lruCache) add(key string, value types.Sentiment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		c.moveToFront(entry)
		return
	}

	if len(c.items) >= c.capacity {
		lru := c.tail.prev
		if lru != c.head {
			c.removeEntry(lru)
		}
	}

	entry := &lruEntry{key: key, value: value}
	c.items[key] = entry
	c.addToFront(entry)
}

// len returns the current number of cached entries.
func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lruCache) addToFront(entry *lruEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *lruCache) moveToFront(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *lruCache) removeEntry(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}
