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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCacheSetAndGet(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	err := c.Set(CacheKey{Key: "k1"}, "v1")
	assert.NoError(t, err)

	value, found := c.Get(CacheKey{Key: "k1"})
	assert.True(t, found)
	assert.Equal(t, "v1", value)
}

func TestInMemoryCacheMiss(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	_, found := c.Get(CacheKey{Key: "absent"})
	assert.False(t, found)
}

func TestInMemoryCacheOverwrite(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v2"))

	value, found := c.Get(CacheKey{Key: "k1"})
	assert.True(t, found)
	assert.Equal(t, "v2", value)
}

func TestInMemoryCacheDelete(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	assert.NoError(t, c.Delete(CacheKey{Key: "k1"}))

	_, found := c.Get(CacheKey{Key: "k1"})
	assert.False(t, found)
}

func TestInMemoryCacheExpiry(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, 10*time.Millisecond)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get(CacheKey{Key: "k1"})
	assert.False(t, found)
}

func TestInMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newInMemoryCache[int]("test", true, 2, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, 1))
	assert.NoError(t, c.Set(CacheKey{Key: "k2"}, 2))

	// Touch k1 so k2 becomes the eviction candidate.
	_, _ = c.Get(CacheKey{Key: "k1"})
	assert.NoError(t, c.Set(CacheKey{Key: "k3"}, 3))

	_, foundK1 := c.Get(CacheKey{Key: "k1"})
	_, foundK2 := c.Get(CacheKey{Key: "k2"})
	_, foundK3 := c.Get(CacheKey{Key: "k3"})
	assert.True(t, foundK1)
	assert.False(t, foundK2)
	assert.True(t, foundK3)
}

func TestInMemoryCacheClear(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	assert.NoError(t, c.Set(CacheKey{Key: "k2"}, "v2"))
	assert.NoError(t, c.Clear())

	stats := c.GetStats()
	assert.Equal(t, 0, stats.Size)
}

func TestInMemoryCacheCleanupExpired(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, 10*time.Millisecond)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	time.Sleep(20 * time.Millisecond)
	c.CleanupExpired()

	stats := c.GetStats()
	assert.Equal(t, 0, stats.Size)
}

func TestInMemoryCacheStats(t *testing.T) {
	c := newInMemoryCache[string]("test", true, 10, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	_, _ = c.Get(CacheKey{Key: "k1"})
	_, _ = c.Get(CacheKey{Key: "absent"})

	stats := c.GetStats()
	assert.True(t, stats.Enabled)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, int64(1), stats.HitCount)
	assert.Equal(t, int64(1), stats.MissCount)
	assert.Equal(t, 0.5, stats.HitRate)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	c := newInMemoryCache[string]("test", false, 10, time.Minute)

	assert.NoError(t, c.Set(CacheKey{Key: "k1"}, "v1"))
	_, found := c.Get(CacheKey{Key: "k1"})
	assert.False(t, found)
	assert.False(t, c.IsEnabled())
}
