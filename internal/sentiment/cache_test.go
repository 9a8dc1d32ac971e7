package sentiment

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCacheGetAdd(t *testing.T) {
	c := newLRUCache(4)

	_, ok := c.get("missing")
	assert.False(t, ok)

	c.add("a", types.SentimentPositive)
	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, types.SentimentPositive, got)

	// Adding the same key again refreshes, not duplicates.
	c.add("a", types.SentimentNegative)
	got, ok = c.get("a")
	require.True(t, ok)
	assert.Equal(t, types.SentimentNegative, got)
	assert.Equal(t, 1, c.len())
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)

	c.add("a", types.SentimentPositive)
	c.add("b", types.SentimentNegative)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.add("c", types.SentimentNeutral)

	_, ok = c.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestLRUCacheCapacityBound(t *testing.T) {
	c := newLRUCache(8)
	for i := 0; i < 100; i++ {
		c.add(fmt.Sprintf("key-%d", i), types.SentimentNeutral)
	}
	assert.Equal(t, 8, c.len())
}

func TestLRUCacheConcurrentAccess(t *testing.T) {
	c := newLRUCache(16)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("key-%d", i%32)
				c.add(key, types.SentimentPositive)
				c.get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.len(), 16)
}
