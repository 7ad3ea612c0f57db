// Package cache provides a generic, thread-safe LRU cache.
//
// The pattern library keeps compiled generator trees here, keyed by pattern
// text, so hot patterns are parsed once:
//
//	trees := cache.NewLRUCache[string, *namegen.Generator](128)
//	g, err := trees.GetOrLoad(pattern, func(p string) (*namegen.Generator, error) {
//		return namegen.Compile(p)
//	})
//
// Get, Put and Remove are O(1). Once the cache holds more than its capacity
// the least recently used entry is evicted and the optional eviction
// callback runs. Stats reports hit, miss and eviction counters, which the
// HTTP service exports as metrics.
package cache
