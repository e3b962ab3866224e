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

import "time"

// cacheType defines the backing implementation of a cache.
type cacheType string

const (
	// cacheTypeInMemory denotes the in-memory cache implementation.
	cacheTypeInMemory cacheType = "inmemory"
)

// evictionPolicy defines the eviction strategy for a cache.
type evictionPolicy string

const (
	// evictionPolicyLRU denotes least-recently-used eviction.
	evictionPolicyLRU evictionPolicy = "LRU"
)

const (
	// defaultCacheSize is the maximum number of entries when not configured.
	defaultCacheSize = 1000
	// defaultCacheTTL is the entry time-to-live when not configured.
	defaultCacheTTL = 15 * time.Minute
	// defaultCleanupInterval is the interval between expired-entry sweeps.
	defaultCleanupInterval = 5 * time.Minute
)
