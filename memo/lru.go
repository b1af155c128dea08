package memo

import "sync"

// DefaultCacheMax is the cache size used when a size <= 0 is asked for.
const DefaultCacheMax = 1024

// Cache is a least recently used cache. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu  sync.Mutex
	m   map[K]*entry[K, V]
	max int

	// root.next is the least recently used entry, root.prev the most
	root entry[K, V]

	hits, misses int
}

type entry[K comparable, V any] struct {
	k K
	v V

	prev, next *entry[K, V]
}

// NewCache creates a Cache holding at most max entries.
// If max <= 0, DefaultCacheMax is used.
func NewCache[K comparable, V any](max int) *Cache[K, V] {
	if max <= 0 {
		max = DefaultCacheMax
	}

	c := &Cache[K, V]{
		m:   make(map[K]*entry[K, V]),
		max: max,
	}
	c.root.prev, c.root.next = &c.root, &c.root
	return c
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache[K, V]) pushBack(e *entry[K, V]) {
	e.prev = c.root.prev
	e.next = &c.root
	c.root.prev.next = e
	c.root.prev = e
}

// Add sets the value for key and marks it most recently used.
// If another entry is evicted to make room, Add returns true.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.m[key]; ok {
		e.v = value
		c.unlink(e)
		c.pushBack(e)
		return false
	}

	if len(c.m) >= c.max {
		oldest := c.root.next
		c.unlink(oldest)
		delete(c.m, oldest.k)
		evicted = true
	}

	e := &entry[K, V]{k: key, v: value}
	c.m[key] = e
	c.pushBack(e)
	return
}

// Get reads a value from the cache and marks it most recently used.
// If the key was not found, ok will be false.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m[key]
	if !ok {
		c.misses++
		return
	}
	c.hits++
	c.unlink(e)
	c.pushBack(e)
	return e.v, true
}

// Len returns the number of entries in the cache.
func (c *Cache[_, _]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Stats returns the number of Get calls that found and missed their key.
func (c *Cache[_, _]) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Keys returns the keys in the cache, least recently used first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	ks := make([]K, 0, len(c.m))
	for e := c.root.next; e != &c.root; e = e.next {
		ks = append(ks, e.k)
	}
	return ks
}
