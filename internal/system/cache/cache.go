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

// Package cache provides a centralized cache management system for different cache implementations.
package cache

import (
	"time"

	"github.com/renolink/orderflow/internal/system/config"
	"github.com/renolink/orderflow/internal/system/log"
)

// internalCacheInterface defines the common interface for internal cache implementations.
type internalCacheInterface[T any] interface {
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	GetStats() CacheStat
	CleanupExpired()
	GetName() string
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

// Cache implements the CacheInterface for individual caches.
type Cache[T any] struct {
	enabled       bool
	cacheName     string
	internalCache internalCacheInterface[T]
}

// NewCache creates a new cache instance configured from the deployment configuration.
func NewCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetOrderflowRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty cache")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheProperty.Disabled {
		logger.Debug("Individual cache is disabled, returning empty cache")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}

	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}

	var internalCache internalCacheInterface[T]
	switch getCacheType(cacheConfig) {
	case cacheTypeInMemory:
		internalCache = newInMemoryCache[T](cacheName, true, size, time.Duration(ttl)*time.Second)
	default:
		logger.Warn("Unknown cache type, defaulting to in-memory cache")
		internalCache = newInMemoryCache[T](cacheName, true, size, time.Duration(ttl)*time.Second)
	}

	return &Cache[T]{
		enabled:       true,
		cacheName:     cacheName,
		internalCache: internalCache,
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Set(key, value)
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if !c.enabled {
		var zero T
		return zero, false
	}
	return c.internalCache.Get(key)
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Delete(key)
}

// Clear removes all values from the cache.
func (c *Cache[T]) Clear() error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Clear()
}

// CleanupExpired removes expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}
	c.internalCache.CleanupExpired()
}

// getCacheProperty returns the per-cache configuration for the given cache name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{Name: cacheName}
}

// getCacheType returns the configured cache type.
func getCacheType(cacheConfig config.CacheConfig) cacheType {
	if cacheConfig.Type == "" {
		return cacheTypeInMemory
	}
	return cacheType(cacheConfig.Type)
}
