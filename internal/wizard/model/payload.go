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

import "github.com/renolink/orderflow/internal/wizard/constants"

// EntityRef describes an entity that is either referenced by ID or created inline.
type EntityRef struct {
	Mode constants.StepModeKind `json:"mode"`
	ID   string                 `json:"id,omitempty"`
	New  map[string]string      `json:"new,omitempty"`
}

// PayloadItem is one committed order line.
type PayloadItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// CommitPayload is the single request committed for a wizard session.
// It is immutable once assembled and sent exactly once per submit.
// The order total is a proposal only; authoritative pricing belongs to
// the committing side.
type CommitPayload struct {
	SupplierID string        `json:"supplierId"`
	Lead       EntityRef     `json:"lead"`
	Project    EntityRef     `json:"project"`
	Title      string        `json:"title"`
	StartDate  string        `json:"startDate,omitempty"`
	EndDate    string        `json:"endDate,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	Items      []PayloadItem `json:"items"`
	OrderTotal float64       `json:"orderTotal"`
}
