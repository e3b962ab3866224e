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

// Package model defines the data structures for the order wizard.
package model

import (
	"time"

	"github.com/renolink/orderflow/internal/wizard/constants"
)

// StepState holds one step's accumulated input.
//
// Mode applies to the lead and project steps only: in select mode ReferenceID
// points at an existing entity, in create mode Fields carries the new entity.
// The details step uses Fields alone; the items step uses the session's Items.
type StepState struct {
	Kind        constants.StepKind     `json:"kind"`
	Mode        constants.StepModeKind `json:"mode,omitempty"`
	ReferenceID string                 `json:"referenceId,omitempty"`
	Fields      map[string]string      `json:"fields,omitempty"`
}

// WizardSession is the state of one in-progress order wizard.
// A session is exclusively owned by the request handling it; no other
// component mutates it concurrently.
type WizardSession struct {
	ID               string
	SupplierID       string
	CurrentStepIndex int
	Steps            [constants.StepCount]StepState
	Items            []LineItem
	Submitting       bool
	Submitted        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewWizardSession creates a session positioned at the first step with empty step state.
func NewWizardSession(id, supplierID string) *WizardSession {
	s := &WizardSession{
		ID:         id,
		SupplierID: supplierID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	s.ResetAll()
	return s
}

// ResetAll restores every step to its initial empty shape and returns to the first step.
// Calling it repeatedly yields the same initial state.
func (s *WizardSession) ResetAll() {
	s.CurrentStepIndex = 0
	s.Submitting = false
	s.Submitted = false
	s.Steps = [constants.StepCount]StepState{
		{Kind: constants.StepKindLead, Mode: constants.StepModeSelect, Fields: map[string]string{}},
		{Kind: constants.StepKindProject, Mode: constants.StepModeSelect, Fields: map[string]string{}},
		{Kind: constants.StepKindDetails, Fields: map[string]string{}},
		{Kind: constants.StepKindItems, Fields: map[string]string{}},
	}
	s.Items = nil
}

// Step returns a pointer to the step state at the given index, or nil when out of bounds.
func (s *WizardSession) Step(index int) *StepState {
	if index < 0 || index >= constants.StepCount {
		return nil
	}
	return &s.Steps[index]
}

// LeadStep returns the lead step state.
func (s *WizardSession) LeadStep() *StepState {
	return &s.Steps[constants.StepIndexLead]
}

// ProjectStep returns the project step state.
func (s *WizardSession) ProjectStep() *StepState {
	return &s.Steps[constants.StepIndexProject]
}

// DetailsStep returns the order details step state.
func (s *WizardSession) DetailsStep() *StepState {
	return &s.Steps[constants.StepIndexDetails]
}

// SetStepField merges a single field value into the named step without validation.
func (s *WizardSession) SetStepField(stepIndex int, field, value string) {
	step := s.Step(stepIndex)
	if step == nil {
		return
	}
	if step.Fields == nil {
		step.Fields = map[string]string{}
	}
	step.Fields[field] = value
	s.UpdatedAt = time.Now()
}

// SetStepMode switches the mode of the lead or project step. Switching away from
// select clears the stale reference so dependent choices can be refreshed.
func (s *WizardSession) SetStepMode(stepIndex int, mode constants.StepModeKind) {
	step := s.Step(stepIndex)
	if step == nil {
		return
	}
	if step.Mode != mode {
		step.Mode = mode
		step.ReferenceID = ""
	}
	s.UpdatedAt = time.Now()
}

// SelectedClientID returns the client the project lookup should be scoped to.
// A lead selected by reference doubles as the client reference; a lead being
// created has no client yet.
func (s *WizardSession) SelectedClientID() string {
	lead := s.LeadStep()
	if lead.Mode == constants.StepModeSelect {
		return lead.ReferenceID
	}
	return ""
}

// OnFinalStep reports whether the session is positioned at the last step.
func (s *WizardSession) OnFinalStep() bool {
	return s.CurrentStepIndex == constants.StepCount-1
}
