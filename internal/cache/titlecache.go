package cache

import (
	"crypto/sha256"
	"sync/atomic"

	"github.com/tidwall/tinylru"

	"github.com/inoxlang/titlecase/internal/titlecase"
)

const (
	DEFAULT_TITLE_CACHE_SIZE = 1024

	//lines longer than this are keyed by their hash
	MAX_RAW_KEY_LENGTH = 64
)

// A TitleCache memoizes the title-cased form of lines, it is safe for concurrent use.
// A cache with a size of zero does not store anything.
type TitleCache struct {
	caser *titlecase.Caser
	size  int
	lru   atomic.Pointer[tinylru.LRU]

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewTitleCache(caser *titlecase.Caser, size int) *TitleCache {
	if size < 0 {
		size = 0
	}
	c := &TitleCache{
		caser: caser,
		size:  size,
	}
	c.Reset()
	return c
}

func (c *TitleCache) Title(line string) string {
	lru := c.lru.Load()
	if lru == nil {
		return c.caser.Title(line)
	}

	key := cacheKey(line)
	if title, ok := lru.Get(key); ok {
		c.hits.Add(1)
		return title.(string)
	}

	c.misses.Add(1)
	title := c.caser.Title(line)
	lru.Set(key, title)
	return title
}

// Len returns the number of cached titles.
func (c *TitleCache) Len() int {
	lru := c.lru.Load()
	if lru == nil {
		return 0
	}
	return lru.Len()
}

func (c *TitleCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset removes all entries and resets the statistics.
func (c *TitleCache) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)

	if c.size == 0 {
		return
	}

	lru := new(tinylru.LRU)
	lru.Resize(c.size)
	c.lru.Store(lru)
}

func cacheKey(line string) any {
	if len(line) <= MAX_RAW_KEY_LENGTH {
		return line
	}
	return sha256.Sum256([]byte(line))
}
