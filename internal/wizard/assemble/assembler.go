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

// Package assemble builds the commit payload from an accumulated wizard session.
package assemble

import (
	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// BuildPayload projects the full wizard session into a single commit payload.
// The transformation is deterministic and performs no I/O. Items without a
// name or a positive quantity are dropped from the payload silently, and the
// order total counts the surviving items only.
func BuildPayload(session *model.WizardSession) model.CommitPayload {
	payload := model.CommitPayload{
		SupplierID: session.SupplierID,
		Lead:       buildEntityRef(session.LeadStep()),
		Project:    buildEntityRef(session.ProjectStep()),
		Title:      session.DetailsStep().Fields[constants.FieldTitle],
		StartDate:  session.DetailsStep().Fields[constants.FieldStartDate],
		EndDate:    session.DetailsStep().Fields[constants.FieldEndDate],
		Notes:      session.DetailsStep().Fields[constants.FieldNotes],
	}

	for _, item := range session.Items {
		if !item.IsCommittable() {
			continue
		}
		payload.Items = append(payload.Items, model.PayloadItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}
	payload.OrderTotal = model.OrderTotal(session.Items)

	return payload
}

// buildEntityRef projects a select-or-create step into an entity reference.
func buildEntityRef(step *model.StepState) model.EntityRef {
	switch step.Mode {
	case constants.StepModeSelect:
		return model.EntityRef{
			Mode: constants.StepModeSelect,
			ID:   step.ReferenceID,
		}
	case constants.StepModeCreate:
		fields := make(map[string]string, len(step.Fields))
		for k, v := range step.Fields {
			fields[k] = v
		}
		return model.EntityRef{
			Mode: constants.StepModeCreate,
			New:  fields,
		}
	default:
		// Unset mode projects as an empty selection; validation prevents this
		// from reaching the commit executor.
		return model.EntityRef{Mode: step.Mode}
	}
}
