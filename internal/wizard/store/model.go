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

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// timestampLayout is the storage format for session timestamps.
const timestampLayout = time.RFC3339

// sessionRow is the database shape of a wizard session. Step and item state
// are stored as JSON documents.
type sessionRow struct {
	SessionID   string
	SupplierID  string
	CurrentStep int
	StepData    string
	ItemData    string
	Submitting  bool
	CreatedAt   string
	UpdatedAt   string
}

// toSessionRow serializes a wizard session for storage.
func toSessionRow(session *model.WizardSession) (sessionRow, error) {
	stepData, err := json.Marshal(session.Steps)
	if err != nil {
		return sessionRow{}, fmt.Errorf("failed to marshal step data: %w", err)
	}
	itemData, err := json.Marshal(session.Items)
	if err != nil {
		return sessionRow{}, fmt.Errorf("failed to marshal item data: %w", err)
	}

	return sessionRow{
		SessionID:   session.ID,
		SupplierID:  session.SupplierID,
		CurrentStep: session.CurrentStepIndex,
		StepData:    string(stepData),
		ItemData:    string(itemData),
		Submitting:  session.Submitting,
		CreatedAt:   session.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:   session.UpdatedAt.UTC().Format(timestampLayout),
	}, nil
}

// toWizardSession deserializes a stored row back into a wizard session.
func toWizardSession(row sessionRow) (*model.WizardSession, error) {
	session := &model.WizardSession{
		ID:               row.SessionID,
		SupplierID:       row.SupplierID,
		CurrentStepIndex: row.CurrentStep,
		Submitting:       row.Submitting,
	}

	var steps [constants.StepCount]model.StepState
	if err := json.Unmarshal([]byte(row.StepData), &steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal step data: %w", err)
	}
	// Empty field maps are omitted on the wire; restore them so callers can
	// merge input without nil checks.
	for i := range steps {
		if steps[i].Fields == nil {
			steps[i].Fields = map[string]string{}
		}
	}
	session.Steps = steps

	if row.ItemData != "" && row.ItemData != "null" {
		if err := json.Unmarshal([]byte(row.ItemData), &session.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item data: %w", err)
		}
	}

	createdAt, err := time.Parse(timestampLayout, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created timestamp: %w", err)
	}
	session.CreatedAt = createdAt

	updatedAt, err := time.Parse(timestampLayout, row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated timestamp: %w", err)
	}
	session.UpdatedAt = updatedAt

	return session, nil
}
