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

// Choice is one selectable entry offered to the caller for a step.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// WizardRequest represents the request to execute a wizard action.
type WizardRequest struct {
	SessionID   string                 `json:"sessionId,omitempty"`
	SupplierID  string                 `json:"supplierId,omitempty"`
	Action      string                 `json:"action"`
	StepIndex   *int                   `json:"stepIndex,omitempty"`
	Mode        string                 `json:"mode,omitempty"`
	ReferenceID string                 `json:"referenceId,omitempty"`
	Inputs      map[string]string      `json:"inputs,omitempty"`
	Items       []LineItem             `json:"items,omitempty"`
}

// WizardResponse represents the response of a wizard action.
type WizardResponse struct {
	SessionID string                  `json:"sessionId"`
	StepIndex int                     `json:"stepIndex"`
	StepKind  constants.StepKind      `json:"stepKind"`
	Status    constants.SessionStatus `json:"status"`
	Message   string                  `json:"message,omitempty"`
	Choices   []Choice                `json:"choices,omitempty"`
	Notices   []string                `json:"notices,omitempty"`
	OrderID   string                  `json:"orderId,omitempty"`
}
