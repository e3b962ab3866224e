/*
 * Copyright (c) 2026, Renolink Inc. (https://renolink.io).
 *
 * Renolink Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/renolink/orderflow/internal/system/log"
)

// inMemoryCacheEntry represents an entry in the in-memory cache with access metadata.
type inMemoryCacheEntry[T any] struct {
	*CacheEntry[T]
	listElement *list.Element
}

// inMemoryCache implements the internal cache interface with TTL and LRU eviction.
type inMemoryCache[T any] struct {
	enabled     bool
	name        string
	cache       map[CacheKey]*inMemoryCacheEntry[T]
	accessOrder *list.List
	mu          sync.RWMutex
	size        int
	ttl         time.Duration
	hitCount    int64
	missCount   int64
	evictCount  int64
}

// newInMemoryCache creates a new instance of inMemoryCache.
func newInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration) internalCacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String("name", name))

	if !enabled {
		logger.Debug("In-memory cache is disabled, returning empty cache")
		return &inMemoryCache[T]{
			name:    name,
			enabled: false,
		}
	}

	cacheSize := size
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cacheTTL := ttl
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	logger.Debug("Initializing in-memory cache", log.Int("size", cacheSize), log.Any("ttl", cacheTTL))

	return &inMemoryCache[T]{
		enabled:     true,
		name:        name,
		cache:       make(map[CacheKey]*inMemoryCacheEntry[T]),
		accessOrder: list.New(),
		size:        cacheSize,
		ttl:         cacheTTL,
	}
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// IsEnabled returns whether the cache is enabled.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache, evicting the least recently used entry when full.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.cache[key]; ok {
		existing.Value = value
		existing.ExpiryTime = time.Now().Add(c.ttl)
		c.accessOrder.MoveToBack(existing.listElement)
		return nil
	}

	if len(c.cache) >= c.size {
		c.evictOldest()
	}

	entry := &inMemoryCacheEntry[T]{
		CacheEntry: &CacheEntry[T]{
			Value:      value,
			ExpiryTime: time.Now().Add(c.ttl),
		},
	}
	entry.listElement = c.accessOrder.PushBack(key)
	c.cache[key] = entry

	return nil
}

// Get retrieves a value from the cache. Expired entries are removed on access.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		c.missCount++
		return zero, false
	}

	if time.Now().After(entry.ExpiryTime) {
		c.removeEntry(key, entry)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToBack(entry.listElement)
	c.hitCount++
	return entry.Value, true
}

// Delete removes a value from the cache.
func (c *inMemoryCache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[key]; ok {
		c.removeEntry(key, entry)
	}
	return nil
}

// Clear removes all values from the cache.
func (c *inMemoryCache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.accessOrder.Init()
	return nil
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.After(entry.ExpiryTime) {
			c.removeEntry(key, entry)
		}
	}
}

// GetStats returns the cache statistics.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Enabled: false}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hitCount + c.missCount
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hitCount) / float64(total)
	}

	return CacheStat{
		Enabled:    true,
		Size:       len(c.cache),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// evictOldest removes the least recently used entry. Caller must hold the lock.
func (c *inMemoryCache[T]) evictOldest() {
	front := c.accessOrder.Front()
	if front == nil {
		return
	}
	key := front.Value.(CacheKey)
	if entry, ok := c.cache[key]; ok {
		c.removeEntry(key, entry)
		c.evictCount++
	}
}

// removeEntry removes a single entry. Caller must hold the lock.
func (c *inMemoryCache[T]) removeEntry(key CacheKey, entry *inMemoryCacheEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.cache, key)
}
