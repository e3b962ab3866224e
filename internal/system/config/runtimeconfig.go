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

package config

import "sync"

// OrderflowRuntime holds the runtime configuration for the Orderflow server.
type OrderflowRuntime struct {
	OrderflowHome string `yaml:"orderflow_home"`
	Config        Config `yaml:"config"`
}

var (
	runtimeConfig *OrderflowRuntime
	once          sync.Once
)

// InitializeOrderflowRuntime initializes the OrderflowRuntime configuration.
func InitializeOrderflowRuntime(orderflowHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &OrderflowRuntime{
			OrderflowHome: orderflowHome,
			Config:        *config,
		}
	})

	return nil
}

// GetOrderflowRuntime returns the OrderflowRuntime configuration.
func GetOrderflowRuntime() *OrderflowRuntime {
	if runtimeConfig == nil {
		panic("OrderflowRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetOrderflowRuntime resets the OrderflowRuntime.
// This should only be used in tests to reset the singleton state.
func ResetOrderflowRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
