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

package model

// LineItem is one order line entered in the items step.
type LineItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// LineTotal returns the line total for the item.
func (i LineItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// IsCommittable reports whether the item survives the commit-time filter.
// Items without a name or with a non-positive quantity are dropped from the
// payload silently instead of blocking submission.
func (i LineItem) IsCommittable() bool {
	return i.Name != "" && i.Quantity > 0
}

// OrderTotal sums the line totals of the committable items only.
func OrderTotal(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.IsCommittable() {
			total += item.LineTotal()
		}
	}
	return total
}
