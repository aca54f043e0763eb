package dedupe

import (
	"sync"
	"time"
)

// ItemKey identifies a gazette item. The same id may appear in BOE and BORME.
type ItemKey struct {
	Gazette string
	ID      string
}

type mark struct {
	key ItemKey
	at  time.Time
}

// Cache remembers which gazette items were already published. Entries leave
// the cache once they are older than ttl or when more than capacity items
// are tracked, oldest first. Safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	marked    map[ItemKey]time.Time
	queue     []mark
	perSource map[string]int
	capacity  int
	ttl       time.Duration
	now       func() time.Time
}

// NewCache creates a cache with the provided capacity and ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		marked:    make(map[ItemKey]time.Time, capacity),
		queue:     make([]mark, 0, capacity),
		perSource: make(map[string]int),
		capacity:  capacity,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Seen reports whether the item was marked inside the ttl window.
func (c *Cache) Seen(gazette, id string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	at, ok := c.marked[ItemKey{Gazette: gazette, ID: id}]
	return ok && now.Sub(at) <= c.ttl
}

// Mark records the item as published.
func (c *Cache) Mark(gazette, id string) {
	now := c.now()
	key := ItemKey{Gazette: gazette, ID: id}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.marked[key]; !ok {
		c.perSource[gazette]++
	}
	c.marked[key] = now
	c.queue = append(c.queue, mark{key: key, at: now})

	c.expire(now.Add(-c.ttl))
	c.trim()
}

// Tracked returns how many items of gazette the cache currently holds.
func (c *Cache) Tracked(gazette string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perSource[gazette]
}

func (c *Cache) expire(cutoff time.Time) {
	for len(c.queue) > 0 && c.queue[0].at.Before(cutoff) {
		c.pop()
	}
}

func (c *Cache) trim() {
	for len(c.queue) > 0 && len(c.marked) > c.capacity {
		c.pop()
	}
}

func (c *Cache) pop() {
	head := c.queue[0]
	c.queue = c.queue[1:]

	// A re-marked item has a newer mark further down the queue.
	if at, ok := c.marked[head.key]; ok && at.Equal(head.at) {
		delete(c.marked, head.key)
		c.perSource[head.key.Gazette]--
		if c.perSource[head.key.Gazette] == 0 {
			delete(c.perSource, head.key.Gazette)
		}
	}
}
