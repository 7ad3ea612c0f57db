package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Stats holds cumulative cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// LRUCache is a thread-safe cache that evicts the least recently used entry
// once it holds more than its capacity.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewLRUCache creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// SetEvictCallback registers fn to run whenever an entry leaves the cache
// through eviction, Remove or Clear. fn runs with the cache lock held and
// must not call back into the cache.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns the value stored under key and marks it as recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

// Put stores value under key. It returns the previous value and true when
// the key was already present.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.put(key, value)
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// caching its result. Errors from load are returned as is and nothing is
// cached. load runs without the lock, so concurrent misses on the same key
// may call it more than once; the first stored value wins.
func (c *LRUCache[K, V]) GetOrLoad(key K, load func(K) (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.get(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := load(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, nil
	}
	c.put(key, v)
	return v, nil
}

// Remove deletes key and returns its value.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	e := c.removeElement(elem)
	return e.value, true
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear drops every entry. Counters are kept.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for elem := c.order.Back(); elem != nil; elem = elem.Prev() {
			e := elem.Value.(*entry[K, V])
			c.onEvict(e.key, e.value)
		}
	}
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Stats returns a snapshot of the counters.
func (c *LRUCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Len:       c.order.Len(),
		Capacity:  c.capacity,
	}
}

// Callers of the helpers below hold the lock.

func (c *LRUCache[K, V]) get(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.hits++
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	c.misses++
	var zero V
	return zero, false
}

func (c *LRUCache[K, V]) put(key K, value V) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		e := elem.Value.(*entry[K, V])
		old := e.value
		e.value = value
		return old, true
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
		c.evictions++
	}

	var zero V
	return zero, false
}

func (c *LRUCache[K, V]) removeElement(elem *list.Element) *entry[K, V] {
	c.order.Remove(elem)
	e := elem.Value.(*entry[K, V])
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
	return e
}
