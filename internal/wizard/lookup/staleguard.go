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

package lookup

import "sync"

// StaleGuard matches asynchronous lookup responses to the parent selection
// they were issued for. A response whose parent is no longer the latest
// tracked parent for the key must be dropped instead of overwriting the
// current choice list.
type StaleGuard struct {
	mu     sync.Mutex
	latest map[string]string
}

// NewStaleGuard creates an empty StaleGuard.
func NewStaleGuard() *StaleGuard {
	return &StaleGuard{
		latest: make(map[string]string),
	}
}

// Track records the parent as the latest selection for the key.
func (g *StaleGuard) Track(key, parent string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest[key] = parent
}

// IsCurrent reports whether the parent is still the latest selection for the key.
func (g *StaleGuard) IsCurrent(key, parent string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest[key] == parent
}

// Clear forgets the tracked selection for the key. Pending responses for the
// key are dropped once cleared.
func (g *StaleGuard) Clear(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.latest, key)
}
