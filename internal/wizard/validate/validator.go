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

// Package validate provides the per-step validation rules for the order wizard.
package validate

import (
	"fmt"
	"time"

	"github.com/renolink/orderflow/internal/wizard/constants"
	"github.com/renolink/orderflow/internal/wizard/model"
)

// StepResult is the structured outcome of a step validation.
// Validation never panics and never returns a Go error; a failed step carries
// a human-readable message for inline display.
type StepResult struct {
	OK      bool
	Message string
}

// ok returns a successful StepResult.
func ok() StepResult {
	return StepResult{OK: true}
}

// fail returns a failed StepResult with the given message.
func fail(message string) StepResult {
	return StepResult{OK: false, Message: message}
}

// ValidateStep decides whether the wizard may leave the step at the given index.
// The whole step is either accepted or rejected; there is no partial application.
func ValidateStep(stepIndex int, session *model.WizardSession) StepResult {
	switch stepIndex {
	case constants.StepIndexLead:
		return validateLeadStep(session.LeadStep())
	case constants.StepIndexProject:
		return validateProjectStep(session.ProjectStep())
	case constants.StepIndexDetails:
		return validateDetailsStep(session.DetailsStep())
	case constants.StepIndexItems:
		return validateItemsStep(session.Items)
	default:
		return fail(fmt.Sprintf("unknown wizard step %d", stepIndex))
	}
}

// ValidateAll validates every step in order and returns the first failure.
func ValidateAll(session *model.WizardSession) StepResult {
	for i := 0; i < constants.StepCount; i++ {
		if result := ValidateStep(i, session); !result.OK {
			return result
		}
	}
	return ok()
}

// validateLeadStep checks the lead selection or creation input.
func validateLeadStep(step *model.StepState) StepResult {
	switch step.Mode {
	case constants.StepModeSelect:
		if step.ReferenceID == "" {
			return fail("Select a lead to continue")
		}
		return ok()
	case constants.StepModeCreate:
		if step.Fields[constants.FieldName] == "" {
			return fail("Enter a name for the new lead")
		}
		return ok()
	default:
		return fail("Choose whether to select an existing lead or create a new one")
	}
}

// validateProjectStep checks the project selection or creation input.
func validateProjectStep(step *model.StepState) StepResult {
	switch step.Mode {
	case constants.StepModeSelect:
		if step.ReferenceID == "" {
			return fail("Select a project to continue")
		}
		return ok()
	case constants.StepModeCreate:
		if step.Fields[constants.FieldTitle] == "" {
			return fail("Enter a title for the new project")
		}
		return ok()
	default:
		return fail("Choose whether to select an existing project or create a new one")
	}
}

// validateDetailsStep checks the order title and the optional date range.
func validateDetailsStep(step *model.StepState) StepResult {
	if step.Fields[constants.FieldTitle] == "" {
		return fail("Enter a title for the order")
	}

	startStr := step.Fields[constants.FieldStartDate]
	endStr := step.Fields[constants.FieldEndDate]
	if startStr == "" || endStr == "" {
		return ok()
	}

	start, err := time.Parse(constants.DateLayout, startStr)
	if err != nil {
		return fail("The start date is not a valid date")
	}
	end, err := time.Parse(constants.DateLayout, endStr)
	if err != nil {
		return fail("The end date is not a valid date")
	}

	// Equal dates are accepted; only an end date strictly before the start is rejected.
	if end.Before(start) {
		return fail("The end date must not be earlier than the start date")
	}
	return ok()
}

// validateItemsStep checks the line items. Unlike the commit-time filter, this
// gate is strict: any incomplete item blocks submission.
func validateItemsStep(items []model.LineItem) StepResult {
	if len(items) == 0 {
		return fail("Add at least one item to the order")
	}

	for i, item := range items {
		if item.Name == "" {
			return fail(fmt.Sprintf("Item %d is missing a name", i+1))
		}
		if item.Quantity <= 0 {
			return fail(fmt.Sprintf("Item %d must have a quantity greater than zero", i+1))
		}
		if item.UnitPrice < 0 {
			return fail(fmt.Sprintf("Item %d must not have a negative unit price", i+1))
		}
	}
	return ok()
}
